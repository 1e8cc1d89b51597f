package rose

import "github.com/rose-codec/rosebuf/ber"

const (
	maxPartyNumberDigits  = 20
	maxSubaddressInfo     = 20
	maxGeneralizedTimeLen = 19
)

// NumberingPlan is the PartyNumber CHOICE discriminator, one value per
// context tag. data(3), telex(4) and nationalStandard(8) are carried for
// completeness; no supplemented operation actually emits them.
type NumberingPlan uint8

const (
	PlanUnknown           NumberingPlan = 0
	PlanPublic            NumberingPlan = 1
	PlanNSAP              NumberingPlan = 2
	PlanData              NumberingPlan = 3
	PlanTelex             NumberingPlan = 4
	PlanPrivate           NumberingPlan = 5
	PlanNationalStandard  NumberingPlan = 8
)

// TypeOfNumber qualifies a Public or Private PartyNumber.
type TypeOfNumber uint8

// PartyNumber is the ROSE NumberDigits/NetworkPartyNumber CHOICE:
// unknown/nsap/data/telex/nationalStandard carry raw digits under their
// own context tag; public/private additionally carry a type-of-number
// enumeration inside a nested constructed element.
type PartyNumber struct {
	Plan   NumberingPlan
	Type   TypeOfNumber // meaningful only for PlanPublic/PlanPrivate
	Digits []byte       // numeric-string bytes, length <= maxPartyNumberDigits
}

// Encode appends the PartyNumber CHOICE.
func (p PartyNumber) Encode(w *ber.Writer) error {
	if len(p.Digits) > maxPartyNumberDigits {
		return ErrValueOutOfRange
	}
	tag := ber.ContextTag(uint32(p.Plan), false)
	switch p.Plan {
	case PlanPublic, PlanPrivate:
		w.Nested(ber.ContextTag(uint32(p.Plan), true), func(inner *ber.Writer) {
			inner.EncodeInt64(ber.UniversalTag(ber.TagEnumerated, false), int64(p.Type))
			inner.EncodeOctetString(ber.UniversalTag(ber.TagNumericString, false), p.Digits)
		})
	case PlanUnknown, PlanNSAP, PlanData, PlanTelex, PlanNationalStandard:
		w.EncodeOctetString(tag, p.Digits)
	default:
		return ErrValueOutOfRange
	}
	return nil
}

// DecodePartyNumber reads a PartyNumber CHOICE starting at r's cursor.
func DecodePartyNumber(r *ber.Reader) (PartyNumber, error) {
	id, sub, err := r.ReadTagLength()
	if err != nil {
		return PartyNumber{}, wrapDecode("PartyNumber", "", err)
	}
	if id.Class != ber.ClassContextSpecific {
		return PartyNumber{}, wrapDecode("PartyNumber", "", ErrUnexpectedTag)
	}
	plan := NumberingPlan(id.Number)
	switch plan {
	case PlanPublic, PlanPrivate:
		typeID, typeSub, err := sub.ReadTagLength()
		if err != nil || !typeID.Universal(ber.TagEnumerated) {
			return PartyNumber{}, wrapDecode("PartyNumber", "type-of-number", ErrUnexpectedTag)
		}
		typeVal, err := ber.DecodeInt64(typeSub.Content())
		if err != nil {
			return PartyNumber{}, wrapDecode("PartyNumber", "type-of-number", err)
		}
		digitsID, digitsSub, err := sub.ReadTagLength()
		if err != nil {
			return PartyNumber{}, wrapDecode("PartyNumber", "digits", err)
		}
		_ = digitsID
		digits, err := ber.DecodeOctetString(digitsSub.Content(), maxPartyNumberDigits)
		if err != nil {
			return PartyNumber{}, wrapDecode("PartyNumber", "digits", err)
		}
		return PartyNumber{Plan: plan, Type: TypeOfNumber(typeVal), Digits: digits}, nil
	case PlanUnknown, PlanNSAP, PlanData, PlanTelex, PlanNationalStandard:
		digits, err := ber.DecodeOctetString(sub.Content(), maxPartyNumberDigits)
		if err != nil {
			return PartyNumber{}, wrapDecode("PartyNumber", "digits", err)
		}
		return PartyNumber{Plan: plan, Digits: digits}, nil
	default:
		return PartyNumber{}, wrapDecode("PartyNumber", "", ErrUnexpectedTag)
	}
}

// SubaddressKind distinguishes PartySubaddress's two CHOICE arms.
type SubaddressKind uint8

const (
	SubaddressUserSpecified SubaddressKind = 0
	SubaddressNSAP          SubaddressKind = 1
)

// PartySubaddress is the ROSE PartySubaddress CHOICE. UserSpecified is not
// recommended by the source spec but is still accepted/emitted; NSAP is
// the common form.
type PartySubaddress struct {
	Kind            SubaddressKind
	Information     []byte // length <= maxSubaddressInfo
	OddCountPresent bool   // UserSpecified only
	OddCount        bool
}

// Present reports whether a subaddress value is attached, mirroring the
// source's "subaddress present if length is nonzero" convention.
func (s PartySubaddress) Present() bool { return len(s.Information) > 0 }

// Encode appends the PartySubaddress CHOICE: UserSpecified is a universal
// constructed SEQUENCE, NSAP a bare universal OCTET STRING — the two are
// told apart on decode by tag, not by an enclosing context tag.
func (s PartySubaddress) Encode(w *ber.Writer) error {
	if len(s.Information) > maxSubaddressInfo {
		return ErrValueOutOfRange
	}
	switch s.Kind {
	case SubaddressUserSpecified:
		w.Nested(ber.UniversalTag(ber.TagSequence, true), func(inner *ber.Writer) {
			inner.EncodeOctetString(ber.UniversalTag(ber.TagOctetString, false), s.Information)
			if s.OddCountPresent {
				inner.EncodeBoolean(ber.UniversalTag(ber.TagBoolean, false), s.OddCount)
			}
		})
	case SubaddressNSAP:
		w.EncodeOctetString(ber.UniversalTag(ber.TagOctetString, false), s.Information)
	default:
		return ErrValueOutOfRange
	}
	return nil
}

// DecodePartySubaddress reads a PartySubaddress CHOICE.
func DecodePartySubaddress(r *ber.Reader) (PartySubaddress, error) {
	id, sub, err := r.ReadTagLength()
	if err != nil {
		return PartySubaddress{}, wrapDecode("PartySubaddress", "", err)
	}
	switch {
	case id.Universal(ber.TagSequence) && id.Constructed:
		infoID, infoSub, err := sub.ReadTagLength()
		if err != nil || !infoID.Universal(ber.TagOctetString) {
			return PartySubaddress{}, wrapDecode("PartySubaddress", "information", ErrUnexpectedTag)
		}
		info, err := ber.DecodeOctetString(infoSub.Content(), maxSubaddressInfo)
		if err != nil {
			return PartySubaddress{}, wrapDecode("PartySubaddress", "information", err)
		}
		result := PartySubaddress{Kind: SubaddressUserSpecified, Information: info}
		if sub.Remaining() {
			boolID, boolSub, err := sub.ReadTagLength()
			if err != nil || !boolID.Universal(ber.TagBoolean) {
				return PartySubaddress{}, wrapDecode("PartySubaddress", "odd-count", ErrUnexpectedTag)
			}
			oddCount, err := ber.DecodeBoolean(boolSub.Content())
			if err != nil {
				return PartySubaddress{}, wrapDecode("PartySubaddress", "odd-count", err)
			}
			result.OddCountPresent = true
			result.OddCount = oddCount
		}
		return result, nil
	case id.Universal(ber.TagOctetString):
		info, err := ber.DecodeOctetString(sub.Content(), maxSubaddressInfo)
		if err != nil {
			return PartySubaddress{}, wrapDecode("PartySubaddress", "nsap", err)
		}
		return PartySubaddress{Kind: SubaddressNSAP, Information: info}, nil
	default:
		return PartySubaddress{}, wrapDecode("PartySubaddress", "", ErrUnexpectedTag)
	}
}

// Address is PartyNumber plus an optional PartySubaddress, tagged by the
// caller (the tag varies by which operation argument embeds it).
type Address struct {
	Number     PartyNumber
	Subaddress PartySubaddress // present iff Subaddress.Present()
}

// EncodeTagged appends Address under the given constructed tag.
func (a Address) EncodeTagged(w *ber.Writer, tag ber.Identifier) error {
	var innerErr error
	w.Nested(tag, func(inner *ber.Writer) {
		if err := a.Number.Encode(inner); err != nil {
			innerErr = err
			return
		}
		if a.Subaddress.Present() {
			if err := a.Subaddress.Encode(inner); err != nil {
				innerErr = err
			}
		}
	})
	return wrapEncode("Address", "", innerErr)
}

// DecodeAddress reads an Address from a Reader already positioned at (and
// bounded to) its content — i.e. the caller has consumed the enclosing
// tag/length itself via ReadTagLength.
func DecodeAddress(content *ber.Reader) (Address, error) {
	number, err := DecodePartyNumber(content)
	if err != nil {
		return Address{}, err
	}
	a := Address{Number: number}
	if content.Remaining() {
		sub, err := DecodePartySubaddress(content)
		if err != nil {
			return Address{}, err
		}
		a.Subaddress = sub
	}
	return a, nil
}

// ScreeningIndicator qualifies a NumberScreened/AddressScreened value.
type ScreeningIndicator uint8

const (
	ScreeningUserNotScreened      ScreeningIndicator = 0
	ScreeningUserVerifiedPassed   ScreeningIndicator = 1
	ScreeningUserVerifiedFailed   ScreeningIndicator = 2
	ScreeningNetworkProvided      ScreeningIndicator = 3
)

// NumberScreened is PartyNumber plus a screening indicator.
type NumberScreened struct {
	Number    PartyNumber
	Screening ScreeningIndicator
}

func (n NumberScreened) encodeInto(w *ber.Writer) error {
	if err := n.Number.Encode(w); err != nil {
		return err
	}
	w.EncodeInt64(ber.UniversalTag(ber.TagEnumerated, false), int64(n.Screening))
	return nil
}

func decodeNumberScreenedContent(content *ber.Reader) (NumberScreened, error) {
	number, err := DecodePartyNumber(content)
	if err != nil {
		return NumberScreened{}, err
	}
	screenID, screenSub, err := content.ReadTagLength()
	if err != nil || !screenID.Universal(ber.TagEnumerated) {
		return NumberScreened{}, wrapDecode("NumberScreened", "screening-indicator", ErrUnexpectedTag)
	}
	v, err := ber.DecodeInt64(screenSub.Content())
	if err != nil {
		return NumberScreened{}, wrapDecode("NumberScreened", "screening-indicator", err)
	}
	return NumberScreened{Number: number, Screening: ScreeningIndicator(v)}, nil
}

// PresentationIndicator is the presentation CHOICE discriminator shared by
// PresentedNumberUnscreened, PresentedNumberScreened, and
// PresentedAddressScreened.
type PresentationIndicator uint8

const (
	PresentationAllowed                    PresentationIndicator = 0
	PresentationRestricted                 PresentationIndicator = 1
	PresentationNumberNotAvailable         PresentationIndicator = 2
	PresentationRestrictedNumber           PresentationIndicator = 3
)

// PresentedNumberUnscreened is a PartyNumber under an EXPLICIT
// presentation-allowed/restricted-but-present tag, or a bare NULL for the
// fully-restricted cases.
type PresentedNumberUnscreened struct {
	Presentation PresentationIndicator
	Number       PartyNumber // valid only when Presentation is Allowed or RestrictedNumber
}

// Encode appends the PresentedNumberUnscreened CHOICE.
func (p PresentedNumberUnscreened) Encode(w *ber.Writer) error {
	switch p.Presentation {
	case PresentationAllowed, PresentationRestrictedNumber:
		var innerErr error
		w.Nested(ber.ContextTag(uint32(p.Presentation), true), func(inner *ber.Writer) {
			innerErr = p.Number.Encode(inner)
		})
		return wrapEncode("PresentedNumberUnscreened", "", innerErr)
	case PresentationRestricted, PresentationNumberNotAvailable:
		w.EncodeNull(ber.ContextTag(uint32(p.Presentation), false))
		return nil
	default:
		return ErrValueOutOfRange
	}
}

// DecodePresentedNumberUnscreened reads the CHOICE.
func DecodePresentedNumberUnscreened(r *ber.Reader) (PresentedNumberUnscreened, error) {
	id, sub, err := r.ReadTagLength()
	if err != nil {
		return PresentedNumberUnscreened{}, wrapDecode("PresentedNumberUnscreened", "", err)
	}
	if id.Class != ber.ClassContextSpecific {
		return PresentedNumberUnscreened{}, wrapDecode("PresentedNumberUnscreened", "", ErrUnexpectedTag)
	}
	presentation := PresentationIndicator(id.Number)
	switch presentation {
	case PresentationAllowed, PresentationRestrictedNumber:
		number, err := DecodePartyNumber(sub)
		if err != nil {
			return PresentedNumberUnscreened{}, err
		}
		return PresentedNumberUnscreened{Presentation: presentation, Number: number}, nil
	case PresentationRestricted, PresentationNumberNotAvailable:
		return PresentedNumberUnscreened{Presentation: presentation}, nil
	default:
		return PresentedNumberUnscreened{}, wrapDecode("PresentedNumberUnscreened", "", ErrUnexpectedTag)
	}
}

// PresentedNumberScreened is the same CHOICE shape as
// PresentedNumberUnscreened, but carrying a NumberScreened IMPLICITly
// tagged rather than a PartyNumber EXPLICITly tagged.
type PresentedNumberScreened struct {
	Presentation PresentationIndicator
	Screened     NumberScreened
}

// Encode appends the PresentedNumberScreened CHOICE.
func (p PresentedNumberScreened) Encode(w *ber.Writer) error {
	switch p.Presentation {
	case PresentationAllowed, PresentationRestrictedNumber:
		var innerErr error
		w.Nested(ber.ContextTag(uint32(p.Presentation), true), func(inner *ber.Writer) {
			innerErr = p.Screened.encodeInto(inner)
		})
		return wrapEncode("PresentedNumberScreened", "", innerErr)
	case PresentationRestricted, PresentationNumberNotAvailable:
		w.EncodeNull(ber.ContextTag(uint32(p.Presentation), false))
		return nil
	default:
		return ErrValueOutOfRange
	}
}

// DecodePresentedNumberScreened reads the CHOICE.
func DecodePresentedNumberScreened(r *ber.Reader) (PresentedNumberScreened, error) {
	id, sub, err := r.ReadTagLength()
	if err != nil {
		return PresentedNumberScreened{}, wrapDecode("PresentedNumberScreened", "", err)
	}
	if id.Class != ber.ClassContextSpecific {
		return PresentedNumberScreened{}, wrapDecode("PresentedNumberScreened", "", ErrUnexpectedTag)
	}
	presentation := PresentationIndicator(id.Number)
	switch presentation {
	case PresentationAllowed, PresentationRestrictedNumber:
		screened, err := decodeNumberScreenedContent(sub)
		if err != nil {
			return PresentedNumberScreened{}, err
		}
		return PresentedNumberScreened{Presentation: presentation, Screened: screened}, nil
	case PresentationRestricted, PresentationNumberNotAvailable:
		return PresentedNumberScreened{Presentation: presentation}, nil
	default:
		return PresentedNumberScreened{}, wrapDecode("PresentedNumberScreened", "", ErrUnexpectedTag)
	}
}

// AddressScreened is a NumberScreened plus an optional subaddress.
type AddressScreened struct {
	Number     PartyNumber
	Screening  ScreeningIndicator
	Subaddress PartySubaddress
}

func (a AddressScreened) encodeInto(w *ber.Writer) error {
	if err := a.Number.Encode(w); err != nil {
		return err
	}
	w.EncodeInt64(ber.UniversalTag(ber.TagEnumerated, false), int64(a.Screening))
	if a.Subaddress.Present() {
		if err := a.Subaddress.Encode(w); err != nil {
			return err
		}
	}
	return nil
}

func decodeAddressScreenedContent(content *ber.Reader) (AddressScreened, error) {
	number, err := DecodePartyNumber(content)
	if err != nil {
		return AddressScreened{}, err
	}
	screenID, screenSub, err := content.ReadTagLength()
	if err != nil || !screenID.Universal(ber.TagEnumerated) {
		return AddressScreened{}, wrapDecode("AddressScreened", "screening-indicator", ErrUnexpectedTag)
	}
	v, err := ber.DecodeInt64(screenSub.Content())
	if err != nil {
		return AddressScreened{}, wrapDecode("AddressScreened", "screening-indicator", err)
	}
	result := AddressScreened{Number: number, Screening: ScreeningIndicator(v)}
	if content.Remaining() {
		sub, err := DecodePartySubaddress(content)
		if err != nil {
			return AddressScreened{}, err
		}
		result.Subaddress = sub
	}
	return result, nil
}

// PresentedAddressScreened is the address-valued analogue of
// PresentedNumberScreened.
type PresentedAddressScreened struct {
	Presentation PresentationIndicator
	Screened     AddressScreened
}

// Encode appends the PresentedAddressScreened CHOICE.
func (p PresentedAddressScreened) Encode(w *ber.Writer) error {
	switch p.Presentation {
	case PresentationAllowed, PresentationRestrictedNumber:
		var innerErr error
		w.Nested(ber.ContextTag(uint32(p.Presentation), true), func(inner *ber.Writer) {
			innerErr = p.Screened.encodeInto(inner)
		})
		return wrapEncode("PresentedAddressScreened", "", innerErr)
	case PresentationRestricted, PresentationNumberNotAvailable:
		w.EncodeNull(ber.ContextTag(uint32(p.Presentation), false))
		return nil
	default:
		return ErrValueOutOfRange
	}
}

// DecodePresentedAddressScreened reads the CHOICE.
func DecodePresentedAddressScreened(r *ber.Reader) (PresentedAddressScreened, error) {
	id, sub, err := r.ReadTagLength()
	if err != nil {
		return PresentedAddressScreened{}, wrapDecode("PresentedAddressScreened", "", err)
	}
	if id.Class != ber.ClassContextSpecific {
		return PresentedAddressScreened{}, wrapDecode("PresentedAddressScreened", "", ErrUnexpectedTag)
	}
	presentation := PresentationIndicator(id.Number)
	switch presentation {
	case PresentationAllowed, PresentationRestrictedNumber:
		screened, err := decodeAddressScreenedContent(sub)
		if err != nil {
			return PresentedAddressScreened{}, err
		}
		return PresentedAddressScreened{Presentation: presentation, Screened: screened}, nil
	case PresentationRestricted, PresentationNumberNotAvailable:
		return PresentedAddressScreened{Presentation: presentation}, nil
	default:
		return PresentedAddressScreened{}, wrapDecode("PresentedAddressScreened", "", ErrUnexpectedTag)
	}
}

// GeneralizedTime carries a raw [UNIVERSAL 24] IMPLICIT VisibleString
// payload (12..19 octets); this codec does not interpret the calendar
// value, only bounds-checks and reproduces it.
type GeneralizedTime struct {
	Value []byte
}

// Encode appends the GeneralizedTime element.
func (g GeneralizedTime) Encode(w *ber.Writer) error {
	if len(g.Value) < 12 || len(g.Value) > maxGeneralizedTimeLen {
		return ErrValueOutOfRange
	}
	w.EncodeOctetString(ber.UniversalTag(ber.TagGeneralizedTime, false), g.Value)
	return nil
}

// DecodeGeneralizedTime reads a GeneralizedTime element.
func DecodeGeneralizedTime(r *ber.Reader) (GeneralizedTime, error) {
	id, sub, err := r.ReadTagLength()
	if err != nil {
		return GeneralizedTime{}, wrapDecode("GeneralizedTime", "", err)
	}
	if !id.Universal(ber.TagGeneralizedTime) {
		return GeneralizedTime{}, wrapDecode("GeneralizedTime", "", ErrUnexpectedTag)
	}
	content := sub.Content()
	if len(content) < 12 || len(content) > maxGeneralizedTimeLen {
		return GeneralizedTime{}, wrapDecode("GeneralizedTime", "", ErrValueOutOfRange)
	}
	value := make([]byte, len(content))
	copy(value, content)
	return GeneralizedTime{Value: value}, nil
}

// Q931IE is an embedded Q.931 information element, carried opaque: this
// codec stores and reproduces its bytes without interpreting them, per
// the original rose_q931.c's "defer decoding" comment.
type Q931IE struct {
	Contents []byte
}

// maxQ931IELength mirrors struct roseQ931ie's single-byte length field.
const maxQ931IELength = 255

// Encode appends the Q931IE under the given (typically APPLICATION 0)
// IMPLICIT tag.
func (q Q931IE) Encode(w *ber.Writer, tag ber.Identifier) error {
	if len(q.Contents) > maxQ931IELength {
		return ErrValueOutOfRange
	}
	w.EncodeOctetString(tag, q.Contents)
	return nil
}

// DecodeQ931IE reads a Q931IE given the already-consumed tag/length bound
// Reader.
func DecodeQ931IE(sub *ber.Reader) (Q931IE, error) {
	content, err := ber.DecodeOctetString(sub.Content(), maxQ931IELength)
	if err != nil {
		return Q931IE{}, wrapDecode("Q931IE", "", err)
	}
	return Q931IE{Contents: content}, nil
}
