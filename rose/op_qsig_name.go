package rose

import "github.com/rose-codec/rosebuf/ber"

// NamePresentation is the Q.SIG Name CHOICE discriminator.
type NamePresentation uint8

const (
	NameNotPresent             NamePresentation = 0
	NamePresentationAllowed    NamePresentation = 1
	NamePresentationRestricted NamePresentation = 2
	NameRestrictedNull         NamePresentation = 3
	NameNotAvailable           NamePresentation = 4
)

// CharacterSet identifies the coded character set of a Name value.
// CharsetISO8859_1 is the DEFAULT, omitted from the wire whenever equal.
type CharacterSet uint8

const (
	CharsetUnknown      CharacterSet = 0
	CharsetISO8859_1    CharacterSet = 1
	CharsetISO8859_2    CharacterSet = 3
	CharsetISO8859_3    CharacterSet = 4
	CharsetISO8859_4    CharacterSet = 5
	CharsetISO8859_5    CharacterSet = 6
	CharsetISO8859_7    CharacterSet = 7
	CharsetISO10646BMP  CharacterSet = 8
	CharsetISO10646UTF8 CharacterSet = 9
)

const maxNameDataLen = 50

// Name is the Q.SIG Name CHOICE: an octet string of printable name data
// under one of five presentation tags, extended (tags 1/3) to carry a
// non-default character set.
type Name struct {
	Presentation NamePresentation
	Data         []byte // 1..50 bytes, meaningful only for Allowed/Restricted
	CharSet      CharacterSet // DEFAULT CharsetISO8859_1, Extended forms only
}

func (n Name) encode(w *ber.Writer) error {
	switch n.Presentation {
	case NamePresentationAllowed, NamePresentationRestricted:
		if len(n.Data) < 1 || len(n.Data) > maxNameDataLen {
			return ErrValueOutOfRange
		}
		tag := uint32(0)
		if n.Presentation == NamePresentationRestricted {
			tag = 2
		}
		if n.CharSet != CharsetISO8859_1 && n.CharSet != CharsetUnknown {
			w.Nested(ber.ContextTag(tag+1, true), func(inner *ber.Writer) {
				inner.EncodeOctetString(ber.UniversalTag(ber.TagOctetString, false), n.Data)
				inner.EncodeInt64(ber.UniversalTag(ber.TagEnumerated, false), int64(n.CharSet))
			})
			return nil
		}
		w.EncodeOctetString(ber.ContextTag(tag, false), n.Data)
		return nil
	case NameRestrictedNull:
		w.EncodeNull(ber.ContextTag(7, false))
		return nil
	case NameNotAvailable:
		w.EncodeNull(ber.ContextTag(4, false))
		return nil
	default:
		return ErrValueOutOfRange
	}
}

// decodeName reads the canonical tagged Name CHOICE.
func decodeName(r *ber.Reader) (Name, error) {
	id, sub, err := r.ReadTagLength()
	if err != nil {
		return Name{}, wrapDecode("Name", "", err)
	}
	if id.Class != ber.ClassContextSpecific {
		return Name{}, wrapDecode("Name", "", ErrUnexpectedTag)
	}
	switch id.Number {
	case 0, 2:
		presentation := NamePresentationAllowed
		if id.Number == 2 {
			presentation = NamePresentationRestricted
		}
		data, err := ber.DecodeOctetString(sub.Content(), maxNameDataLen)
		if err != nil || len(data) < 1 {
			return Name{}, wrapDecode("Name", "data", ErrValueOutOfRange)
		}
		return Name{Presentation: presentation, Data: data, CharSet: CharsetISO8859_1}, nil
	case 1, 3:
		presentation := NamePresentationAllowed
		if id.Number == 3 {
			presentation = NamePresentationRestricted
		}
		dataID, dataSub, err := sub.ReadTagLength()
		if err != nil || !dataID.Universal(ber.TagOctetString) {
			return Name{}, wrapDecode("Name", "name-data", ErrUnexpectedTag)
		}
		data, err := ber.DecodeOctetString(dataSub.Content(), maxNameDataLen)
		if err != nil || len(data) < 1 {
			return Name{}, wrapDecode("Name", "name-data", ErrValueOutOfRange)
		}
		charSet := CharsetISO8859_1
		if sub.Remaining() {
			v, err := decodeEnumerated(sub, "character-set")
			if err != nil {
				return Name{}, err
			}
			charSet = CharacterSet(v)
		}
		return Name{Presentation: presentation, Data: data, CharSet: charSet}, nil
	case 7:
		return Name{Presentation: NameRestrictedNull}, nil
	case 4:
		return Name{Presentation: NameNotAvailable}, nil
	default:
		return Name{}, wrapDecode("Name", "", ErrUnexpectedTag)
	}
}

// decodeNameTolerant accepts the canonical tagged CHOICE and two alternate
// forms seen from older/other-vendor Q.SIG stacks: a bare universal OCTET
// STRING (treated as presentation-allowed data with the default character
// set) and an OBJECT IDENTIFIER-headed value (a manufacturer extension
// marker preceding the name octets, skipped rather than rejected).
func decodeNameTolerant(r *ber.Reader) (Name, error) {
	id, err := r.PeekIdentifier()
	if err != nil {
		return Name{}, wrapDecode("Name", "", err)
	}
	switch {
	case id.Universal(ber.TagOctetString):
		_, sub, err := r.ReadTagLength()
		if err != nil {
			return Name{}, wrapDecode("Name", "", err)
		}
		data, err := ber.DecodeOctetString(sub.Content(), maxNameDataLen)
		if err != nil || len(data) < 1 {
			return Name{}, wrapDecode("Name", "data", ErrValueOutOfRange)
		}
		return Name{Presentation: NamePresentationAllowed, Data: data, CharSet: CharsetISO8859_1}, nil
	case id.Universal(ber.TagObjectIdentifier):
		if _, _, err := r.ReadTagLength(); err != nil {
			return Name{}, wrapDecode("Name", "extension-oid", err)
		}
		return decodeName(r)
	default:
		return decodeName(r)
	}
}

// CallingNameArgs is the Invoke argument for QsigCallingName (and, by the
// same shape, QsigCalledName/QsigConnectedName/QsigBusyName — only
// CallingName is registered here since it is the one spec.md's catalogue
// exercises).
type CallingNameArgs struct {
	Value Name
}

func (a CallingNameArgs) EncodeArgs(w *ber.Writer) error {
	return a.Value.encode(w)
}

func decodeCallingNameArgs(r *ber.Reader) (any, error) {
	name, err := decodeNameTolerant(r)
	if err != nil {
		return nil, err
	}
	return CallingNameArgs{Value: name}, nil
}

func init() {
	registerCodec(OperationQsigCallingName, codecEntry{
		decodeInvokeArgs: decodeCallingNameArgs,
		encodeArgs: func(w *ber.Writer, args any) error {
			return args.(CallingNameArgs).EncodeArgs(w)
		},
	})
}
