package rose

import "github.com/rose-codec/rosebuf/ber"

// Procedure selects which diversion condition an ETSI diversion operation
// applies to.
type Procedure uint8

const (
	ProcedureCFU  Procedure = 0
	ProcedureCFB  Procedure = 1
	ProcedureCFNR Procedure = 2
)

// BasicService narrows a diversion operation to a bearer/teleservice.
// Only the handful of values the catalogue exercises are named; any other
// value round-trips through the raw integer unchanged.
type BasicService uint8

const (
	ServiceAllServices BasicService = 0
	ServiceSpeech      BasicService = 1
)

// DiversionReason is shared by ActivationDiversion/DeactivationDiversion/
// CallRerouting/DivertingLegInformation*.
type DiversionReason uint8

const (
	DiversionUnknown      DiversionReason = 0
	DiversionCFU          DiversionReason = 1
	DiversionCFB          DiversionReason = 2
	DiversionCFNR         DiversionReason = 3
	DiversionCDAlerting   DiversionReason = 4
	DiversionCDImmediate  DiversionReason = 5
)

// SubscriptionOption qualifies how much detail a rerouting notification
// carries. DEFAULT is noNotification(0) — omitted on encode when equal.
type SubscriptionOption uint8

const (
	SubscriptionNoNotification                 SubscriptionOption = 0
	SubscriptionNotificationWithoutDivertedToNr SubscriptionOption = 1
	SubscriptionNotificationWithDivertedToNr    SubscriptionOption = 2
)

// ActivationDiversionArgs is the Invoke argument for EtsiActivationDiversion.
type ActivationDiversionArgs struct {
	Procedure    Procedure
	BasicService BasicService
	ForwardedTo  Address
	ServedUser   PartyNumber // served_user_number.Digits empty means "all numbers"
}

func (a ActivationDiversionArgs) EncodeArgs(w *ber.Writer) error {
	w.EncodeInt64(ber.UniversalTag(ber.TagEnumerated, false), int64(a.Procedure))
	w.EncodeInt64(ber.UniversalTag(ber.TagEnumerated, false), int64(a.BasicService))
	if err := a.ForwardedTo.EncodeTagged(w, ber.UniversalTag(ber.TagSequence, true)); err != nil {
		return err
	}
	return a.ServedUser.Encode(w)
}

func decodeActivationDiversionArgs(r *ber.Reader) (any, error) {
	procedure, err := decodeEnumerated(r, "procedure")
	if err != nil {
		return nil, err
	}
	service, err := decodeEnumerated(r, "basic-service")
	if err != nil {
		return nil, err
	}
	_, seqContent, err := r.ReadTagLength()
	if err != nil {
		return nil, wrapDecode("ActivationDiversion", "forwarded-to", err)
	}
	forwardedTo, err := DecodeAddress(seqContent)
	if err != nil {
		return nil, err
	}
	served, err := DecodePartyNumber(r)
	if err != nil {
		return nil, err
	}
	return ActivationDiversionArgs{
		Procedure:    Procedure(procedure),
		BasicService: BasicService(service),
		ForwardedTo:  forwardedTo,
		ServedUser:   served,
	}, nil
}

// DeactivationDiversionArgs is the Invoke argument for EtsiDeactivationDiversion.
type DeactivationDiversionArgs struct {
	Procedure    Procedure
	BasicService BasicService
	ServedUser   PartyNumber
}

func (a DeactivationDiversionArgs) EncodeArgs(w *ber.Writer) error {
	w.EncodeInt64(ber.UniversalTag(ber.TagEnumerated, false), int64(a.Procedure))
	w.EncodeInt64(ber.UniversalTag(ber.TagEnumerated, false), int64(a.BasicService))
	return a.ServedUser.Encode(w)
}

func decodeDeactivationDiversionArgs(r *ber.Reader) (any, error) {
	procedure, err := decodeEnumerated(r, "procedure")
	if err != nil {
		return nil, err
	}
	service, err := decodeEnumerated(r, "basic-service")
	if err != nil {
		return nil, err
	}
	served, err := DecodePartyNumber(r)
	if err != nil {
		return nil, err
	}
	return DeactivationDiversionArgs{
		Procedure:    Procedure(procedure),
		BasicService: BasicService(service),
		ServedUser:   served,
	}, nil
}

// CallDeflectionArgs is the Invoke argument for EtsiCallDeflection.
type CallDeflectionArgs struct {
	Deflection                     Address
	PresentationAllowedPresent     bool
	PresentationAllowed            bool
}

func (a CallDeflectionArgs) EncodeArgs(w *ber.Writer) error {
	if err := a.Deflection.EncodeTagged(w, ber.UniversalTag(ber.TagSequence, true)); err != nil {
		return err
	}
	if a.PresentationAllowedPresent {
		w.EncodeBoolean(ber.UniversalTag(ber.TagBoolean, false), a.PresentationAllowed)
	}
	return nil
}

func decodeCallDeflectionArgs(r *ber.Reader) (any, error) {
	_, addrContent, err := r.ReadTagLength()
	if err != nil {
		return nil, wrapDecode("CallDeflection", "deflection", err)
	}
	deflection, err := DecodeAddress(addrContent)
	if err != nil {
		return nil, err
	}
	args := CallDeflectionArgs{Deflection: deflection}
	if r.Remaining() {
		id, sub, err := r.ReadTagLength()
		if err != nil || !id.Universal(ber.TagBoolean) {
			return nil, wrapDecode("CallDeflection", "presentation-allowed", ErrUnexpectedTag)
		}
		v, err := ber.DecodeBoolean(sub.Content())
		if err != nil {
			return nil, wrapDecode("CallDeflection", "presentation-allowed", err)
		}
		args.PresentationAllowedPresent = true
		args.PresentationAllowed = v
	}
	return args, nil
}

// InterrogationDiversionArgs is the Invoke argument for EtsiInterrogationDiversion.
type InterrogationDiversionArgs struct {
	ServedUser   PartyNumber
	Procedure    Procedure
	BasicService BasicService // DEFAULT ServiceAllServices, omitted on encode when equal
}

func (a InterrogationDiversionArgs) EncodeArgs(w *ber.Writer) error {
	w.EncodeInt64(ber.UniversalTag(ber.TagEnumerated, false), int64(a.Procedure))
	if a.BasicService != ServiceAllServices {
		w.EncodeInt64(ber.UniversalTag(ber.TagEnumerated, false), int64(a.BasicService))
	}
	return a.ServedUser.Encode(w)
}

func decodeInterrogationDiversionArgs(r *ber.Reader) (any, error) {
	procedure, err := decodeEnumerated(r, "procedure")
	if err != nil {
		return nil, err
	}
	service := ServiceAllServices
	if id, err := r.PeekIdentifier(); err == nil && id.Universal(ber.TagEnumerated) {
		v, err := decodeEnumerated(r, "basic-service")
		if err != nil {
			return nil, err
		}
		service = BasicService(v)
	}
	served, err := DecodePartyNumber(r)
	if err != nil {
		return nil, err
	}
	return InterrogationDiversionArgs{
		ServedUser:   served,
		Procedure:    Procedure(procedure),
		BasicService: service,
	}, nil
}

// ForwardingRecord is one element of the InterrogationDiversion result
// list, bounded at 10 entries (struct roseEtsiForwardingList's reduced
// stack-array size, not the protocol's nominal 0..29).
type ForwardingRecord struct {
	ForwardedTo  Address
	ServedUser   PartyNumber
	Procedure    Procedure
	BasicService BasicService
}

// maxForwardingRecords matches the source's reduced stack-array bound.
const maxForwardingRecords = 10

// ForwardingList is the InterrogationDiversion Result argument.
type ForwardingList struct {
	Records []ForwardingRecord
}

func (a ForwardingList) EncodeArgs(w *ber.Writer) error {
	if len(a.Records) > maxForwardingRecords {
		return ErrValueOutOfRange
	}
	var innerErr error
	w.Nested(ber.UniversalTag(ber.TagSet, true), func(inner *ber.Writer) {
		for _, rec := range a.Records {
			inner.Nested(ber.UniversalTag(ber.TagSequence, true), func(item *ber.Writer) {
				if err := rec.ForwardedTo.EncodeTagged(item, ber.UniversalTag(ber.TagSequence, true)); err != nil {
					innerErr = err
					return
				}
				item.EncodeInt64(ber.UniversalTag(ber.TagEnumerated, false), int64(rec.Procedure))
				item.EncodeInt64(ber.UniversalTag(ber.TagEnumerated, false), int64(rec.BasicService))
				if err := rec.ServedUser.Encode(item); err != nil {
					innerErr = err
				}
			})
		}
	})
	return innerErr
}

func decodeForwardingListArgs(r *ber.Reader) (any, error) {
	_, setContent, err := r.ReadTagLength()
	if err != nil {
		return nil, wrapDecode("ForwardingList", "", err)
	}
	var list ForwardingList
	for setContent.Remaining() {
		if len(list.Records) >= maxForwardingRecords {
			return nil, wrapDecode("ForwardingList", "", ErrValueOutOfRange)
		}
		_, itemContent, err := setContent.ReadTagLength()
		if err != nil {
			return nil, wrapDecode("ForwardingList", "record", err)
		}
		_, addrContent, err := itemContent.ReadTagLength()
		if err != nil {
			return nil, wrapDecode("ForwardingRecord", "forwarded-to", err)
		}
		forwardedTo, err := DecodeAddress(addrContent)
		if err != nil {
			return nil, err
		}
		procedure, err := decodeEnumerated(itemContent, "procedure")
		if err != nil {
			return nil, err
		}
		service, err := decodeEnumerated(itemContent, "basic-service")
		if err != nil {
			return nil, err
		}
		served, err := DecodePartyNumber(itemContent)
		if err != nil {
			return nil, err
		}
		list.Records = append(list.Records, ForwardingRecord{
			ForwardedTo:  forwardedTo,
			ServedUser:   served,
			Procedure:    Procedure(procedure),
			BasicService: BasicService(service),
		})
	}
	return list, nil
}

// maxServedUserNumbers matches the source's reduced stack-array size for
// struct roseEtsiServedUserNumberList (the ASN.1 production itself allows
// SET SIZE(0..99)).
const maxServedUserNumbers = 20

// ServedUserNumberList is the InterrogateServedUserNumbers Result
// argument: SET SIZE(0..99) OF PartyNumber, bounded here at 20 entries.
// InterrogateServedUserNumbers carries no Invoke argument (only the
// operation code) and so has no corresponding Args type.
type ServedUserNumberList struct {
	Numbers []PartyNumber
}

func (a ServedUserNumberList) EncodeArgs(w *ber.Writer) error {
	if len(a.Numbers) > maxServedUserNumbers {
		return ErrValueOutOfRange
	}
	var innerErr error
	w.Nested(ber.UniversalTag(ber.TagSet, true), func(inner *ber.Writer) {
		for _, number := range a.Numbers {
			if err := number.Encode(inner); err != nil {
				innerErr = err
				return
			}
		}
	})
	return innerErr
}

func decodeServedUserNumberListArgs(r *ber.Reader) (any, error) {
	_, setContent, err := r.ReadTagLength()
	if err != nil {
		return nil, wrapDecode("ServedUserNumberList", "", err)
	}
	var list ServedUserNumberList
	for setContent.Remaining() {
		if len(list.Numbers) >= maxServedUserNumbers {
			return nil, wrapDecode("ServedUserNumberList", "", ErrValueOutOfRange)
		}
		number, err := DecodePartyNumber(setContent)
		if err != nil {
			return nil, err
		}
		list.Numbers = append(list.Numbers, number)
	}
	return list, nil
}

// CallReroutingArgs is the Invoke argument for EtsiCallRerouting — the
// richest argument shape in this module (spec.md §8 Scenario B).
type CallReroutingArgs struct {
	ReroutingReason       DiversionReason
	CalledAddress         Address
	ReroutingCounter      uint8 // range 1..5
	Q931IE                Q931IE
	LastRerouting         PresentedNumberUnscreened
	SubscriptionOption    SubscriptionOption // DEFAULT noNotification, omitted when equal
	CallingSubaddress     *PartySubaddress
}

func (a CallReroutingArgs) EncodeArgs(w *ber.Writer) error {
	w.EncodeInt64(ber.UniversalTag(ber.TagEnumerated, false), int64(a.ReroutingReason))
	if err := a.CalledAddress.EncodeTagged(w, ber.UniversalTag(ber.TagSequence, true)); err != nil {
		return err
	}
	if a.ReroutingCounter < 1 || a.ReroutingCounter > 5 {
		return ErrValueOutOfRange
	}
	w.EncodeInt64(ber.UniversalTag(ber.TagEnumerated, false), int64(a.ReroutingCounter))
	if err := a.Q931IE.Encode(w, ber.ApplicationTag(0, false)); err != nil {
		return err
	}
	var innerErr error
	w.Nested(ber.ContextTag(1, true), func(inner *ber.Writer) {
		innerErr = a.LastRerouting.Encode(inner)
	})
	if innerErr != nil {
		return innerErr
	}
	if a.SubscriptionOption != SubscriptionNoNotification {
		w.Nested(ber.ContextTag(2, true), func(inner *ber.Writer) {
			inner.EncodeInt64(ber.UniversalTag(ber.TagEnumerated, false), int64(a.SubscriptionOption))
		})
	}
	if a.CallingSubaddress != nil {
		var subErr error
		w.Nested(ber.ContextTag(3, true), func(inner *ber.Writer) {
			subErr = a.CallingSubaddress.Encode(inner)
		})
		if subErr != nil {
			return subErr
		}
	}
	return nil
}

func decodeCallReroutingArgs(r *ber.Reader) (any, error) {
	reason, err := decodeEnumerated(r, "rerouting-reason")
	if err != nil {
		return nil, err
	}
	_, addrContent, err := r.ReadTagLength()
	if err != nil {
		return nil, wrapDecode("CallRerouting", "called-address", err)
	}
	calledAddress, err := DecodeAddress(addrContent)
	if err != nil {
		return nil, err
	}
	counter, err := decodeEnumerated(r, "rerouting-counter")
	if err != nil {
		return nil, err
	}
	if counter < 1 || counter > 5 {
		return nil, wrapDecode("CallRerouting", "rerouting-counter", ErrValueOutOfRange)
	}
	ieID, ieSub, err := r.ReadTagLength()
	if err != nil || ieID.Class != ber.ClassApplication {
		return nil, wrapDecode("CallRerouting", "q931-ie", ErrUnexpectedTag)
	}
	q931ie, err := DecodeQ931IE(ieSub)
	if err != nil {
		return nil, err
	}
	lastID, lastContent, err := r.ReadTagLength()
	if err != nil || !lastID.ContextSpecific(1) {
		return nil, wrapDecode("CallRerouting", "last-rerouting-nr", ErrUnexpectedTag)
	}
	lastRerouting, err := DecodePresentedNumberUnscreened(lastContent)
	if err != nil {
		return nil, err
	}
	args := CallReroutingArgs{
		ReroutingReason:  DiversionReason(reason),
		CalledAddress:    calledAddress,
		ReroutingCounter: uint8(counter),
		Q931IE:           q931ie,
		LastRerouting:    lastRerouting,
	}
	if r.Remaining() {
		if id, err := r.PeekIdentifier(); err == nil && id.ContextSpecific(2) {
			_, optContent, err := r.ReadTagLength()
			if err != nil {
				return nil, wrapDecode("CallRerouting", "subscription-option", err)
			}
			v, err := decodeEnumerated(optContent, "subscription-option")
			if err != nil {
				return nil, err
			}
			args.SubscriptionOption = SubscriptionOption(v)
		}
	}
	if r.Remaining() {
		if id, err := r.PeekIdentifier(); err == nil && id.ContextSpecific(3) {
			_, subContent, err := r.ReadTagLength()
			if err != nil {
				return nil, wrapDecode("CallRerouting", "calling-subaddress", err)
			}
			sub, err := DecodePartySubaddress(subContent)
			if err != nil {
				return nil, err
			}
			args.CallingSubaddress = &sub
		}
	}
	return args, nil
}

func decodeEnumerated(r *ber.Reader, field string) (int64, error) {
	id, sub, err := r.ReadTagLength()
	if err != nil || !id.Universal(ber.TagEnumerated) {
		return 0, wrapDecode("", field, ErrUnexpectedTag)
	}
	v, err := ber.DecodeInt64(sub.Content())
	if err != nil {
		return 0, wrapDecode("", field, err)
	}
	return v, nil
}

func init() {
	registerCodec(OperationEtsiActivationDiversion, codecEntry{
		decodeInvokeArgs: decodeActivationDiversionArgs,
		encodeArgs: func(w *ber.Writer, args any) error {
			return args.(ActivationDiversionArgs).EncodeArgs(w)
		},
	})
	registerCodec(OperationEtsiDeactivationDiversion, codecEntry{
		decodeInvokeArgs: decodeDeactivationDiversionArgs,
		encodeArgs: func(w *ber.Writer, args any) error {
			return args.(DeactivationDiversionArgs).EncodeArgs(w)
		},
	})
	registerCodec(OperationEtsiCallDeflection, codecEntry{
		decodeInvokeArgs: decodeCallDeflectionArgs,
		encodeArgs: func(w *ber.Writer, args any) error {
			return args.(CallDeflectionArgs).EncodeArgs(w)
		},
	})
	registerCodec(OperationEtsiInterrogationDiversion, codecEntry{
		decodeInvokeArgs: decodeInterrogationDiversionArgs,
		decodeResultArgs: decodeForwardingListArgs,
		encodeArgs: func(w *ber.Writer, args any) error {
			switch v := args.(type) {
			case InterrogationDiversionArgs:
				return v.EncodeArgs(w)
			case ForwardingList:
				return v.EncodeArgs(w)
			default:
				return ErrUnsupportedCodec
			}
		},
	})
	registerCodec(OperationEtsiCallRerouting, codecEntry{
		decodeInvokeArgs: decodeCallReroutingArgs,
		encodeArgs: func(w *ber.Writer, args any) error {
			return args.(CallReroutingArgs).EncodeArgs(w)
		},
	})
	registerCodec(OperationEtsiInterrogateServedUserNumbers, codecEntry{
		decodeResultArgs: decodeServedUserNumberListArgs,
		encodeArgs: func(w *ber.Writer, args any) error {
			return args.(ServedUserNumberList).EncodeArgs(w)
		},
	})
}
