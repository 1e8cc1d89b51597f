package rose

import "github.com/rose-codec/rosebuf/ber"

// CcbsRequestArgs is the Invoke argument for QsigCcbsRequest. Extension is
// not modeled: the source itself declines to record it ("manufacturer
// specific").
type CcbsRequestArgs struct {
	NumberA               PresentedNumberUnscreened
	NumberB               PartyNumber
	Service               Q931IE
	SubaddrA              *PartySubaddress
	SubaddrB              *PartySubaddress
	CanRetainService      bool // DEFAULT false
	RetainSigConnPresent  bool
	RetainSigConnection   bool
}

func (a CcbsRequestArgs) EncodeArgs(w *ber.Writer) error {
	if err := a.NumberA.Encode(w); err != nil {
		return err
	}
	if err := a.NumberB.Encode(w); err != nil {
		return err
	}
	if err := a.Service.Encode(w, ber.ApplicationTag(0, false)); err != nil {
		return err
	}
	var innerErr error
	if a.SubaddrA != nil {
		w.Nested(ber.ContextTag(10, true), func(inner *ber.Writer) {
			innerErr = a.SubaddrA.Encode(inner)
		})
		if innerErr != nil {
			return innerErr
		}
	}
	if a.SubaddrB != nil {
		w.Nested(ber.ContextTag(11, true), func(inner *ber.Writer) {
			innerErr = a.SubaddrB.Encode(inner)
		})
		if innerErr != nil {
			return innerErr
		}
	}
	if a.CanRetainService {
		w.EncodeBoolean(ber.ContextTag(12, false), true)
	}
	if a.RetainSigConnPresent {
		w.EncodeBoolean(ber.ContextTag(13, false), a.RetainSigConnection)
	}
	return nil
}

func decodeCcbsRequestArgs(r *ber.Reader) (any, error) {
	numberA, err := DecodePresentedNumberUnscreened(r)
	if err != nil {
		return nil, err
	}
	numberB, err := DecodePartyNumber(r)
	if err != nil {
		return nil, err
	}
	ieID, ieSub, err := r.ReadTagLength()
	if err != nil || ieID.Class != ber.ClassApplication {
		return nil, wrapDecode("CcbsRequest", "service", ErrUnexpectedTag)
	}
	service, err := DecodeQ931IE(ieSub)
	if err != nil {
		return nil, err
	}
	args := CcbsRequestArgs{NumberA: numberA, NumberB: numberB, Service: service}
	for r.Remaining() {
		id, err := r.PeekIdentifier()
		if err != nil {
			return nil, wrapDecode("CcbsRequest", "", err)
		}
		switch {
		case id.ContextSpecific(10) && args.SubaddrA == nil:
			_, sub, err := r.ReadTagLength()
			if err != nil {
				return nil, wrapDecode("CcbsRequest", "subaddr-a", err)
			}
			s, err := DecodePartySubaddress(sub)
			if err != nil {
				return nil, err
			}
			args.SubaddrA = &s
		case id.ContextSpecific(11) && args.SubaddrB == nil:
			_, sub, err := r.ReadTagLength()
			if err != nil {
				return nil, wrapDecode("CcbsRequest", "subaddr-b", err)
			}
			s, err := DecodePartySubaddress(sub)
			if err != nil {
				return nil, err
			}
			args.SubaddrB = &s
		case id.ContextSpecific(12):
			_, sub, err := r.ReadTagLength()
			if err != nil {
				return nil, wrapDecode("CcbsRequest", "can-retain-service", err)
			}
			v, err := ber.DecodeBoolean(sub.Content())
			if err != nil {
				return nil, wrapDecode("CcbsRequest", "can-retain-service", err)
			}
			args.CanRetainService = v
		case id.ContextSpecific(13):
			_, sub, err := r.ReadTagLength()
			if err != nil {
				return nil, wrapDecode("CcbsRequest", "retain-sig-connection", err)
			}
			v, err := ber.DecodeBoolean(sub.Content())
			if err != nil {
				return nil, wrapDecode("CcbsRequest", "retain-sig-connection", err)
			}
			args.RetainSigConnPresent = true
			args.RetainSigConnection = v
		default:
			return args, nil
		}
	}
	return args, nil
}

// CcbsRequestResult is the ReturnResult argument for QsigCcbsRequest.
type CcbsRequestResult struct {
	NoPathReservation bool // DEFAULT false
	RetainService     bool // DEFAULT false
}

func (r CcbsRequestResult) EncodeArgs(w *ber.Writer) error {
	if r.NoPathReservation {
		w.EncodeBoolean(ber.ContextTag(0, false), true)
	}
	if r.RetainService {
		w.EncodeBoolean(ber.ContextTag(1, false), true)
	}
	return nil
}

func decodeCcbsRequestResult(r *ber.Reader) (any, error) {
	var result CcbsRequestResult
	for r.Remaining() {
		id, err := r.PeekIdentifier()
		if err != nil {
			return nil, wrapDecode("CcbsRequest", "result", err)
		}
		switch {
		case id.ContextSpecific(0):
			_, sub, err := r.ReadTagLength()
			if err != nil {
				return nil, wrapDecode("CcbsRequest", "no-path-reservation", err)
			}
			v, err := ber.DecodeBoolean(sub.Content())
			if err != nil {
				return nil, wrapDecode("CcbsRequest", "no-path-reservation", err)
			}
			result.NoPathReservation = v
		case id.ContextSpecific(1):
			_, sub, err := r.ReadTagLength()
			if err != nil {
				return nil, wrapDecode("CcbsRequest", "retain-service", err)
			}
			v, err := ber.DecodeBoolean(sub.Content())
			if err != nil {
				return nil, wrapDecode("CcbsRequest", "retain-service", err)
			}
			result.RetainService = v
		default:
			return result, nil
		}
	}
	return result, nil
}

func init() {
	registerCodec(OperationQsigCcbsRequest, codecEntry{
		decodeInvokeArgs: decodeCcbsRequestArgs,
		decodeResultArgs: decodeCcbsRequestResult,
		encodeArgs: func(w *ber.Writer, args any) error {
			switch v := args.(type) {
			case CcbsRequestArgs:
				return v.EncodeArgs(w)
			case CcbsRequestResult:
				return v.EncodeArgs(w)
			default:
				return ErrUnsupportedCodec
			}
		},
	})
}
