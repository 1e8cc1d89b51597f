package rose

import "github.com/rose-codec/rosebuf/ber"

const maxCallIdentityLen = 4

// CallTransferIdentifyResult is the ReturnResult argument for
// QsigCallTransferIdentify; the operation's Invoke carries no arguments.
type CallTransferIdentifyResult struct {
	ReroutingNumber PartyNumber
	CallIdentity    []byte // NumericString, length 1..4
}

func (r CallTransferIdentifyResult) EncodeArgs(w *ber.Writer) error {
	if len(r.CallIdentity) < 1 || len(r.CallIdentity) > maxCallIdentityLen {
		return ErrValueOutOfRange
	}
	if err := r.ReroutingNumber.Encode(w); err != nil {
		return err
	}
	w.EncodeOctetString(ber.UniversalTag(ber.TagNumericString, false), r.CallIdentity)
	return nil
}

func decodeCallTransferIdentifyResult(r *ber.Reader) (any, error) {
	number, err := DecodePartyNumber(r)
	if err != nil {
		return nil, err
	}
	idID, idSub, err := r.ReadTagLength()
	if err != nil || !idID.Universal(ber.TagNumericString) {
		return nil, wrapDecode("CallTransferIdentify", "call-identity", ErrUnexpectedTag)
	}
	callID, err := ber.DecodeOctetString(idSub.Content(), maxCallIdentityLen)
	if err != nil || len(callID) < 1 {
		return nil, wrapDecode("CallTransferIdentify", "call-identity", ErrValueOutOfRange)
	}
	return CallTransferIdentifyResult{ReroutingNumber: number, CallIdentity: callID}, nil
}

// ActivateDiversionQArgs is the Invoke argument for QsigActivateDiversionQ.
type ActivateDiversionQArgs struct {
	Procedure        Procedure
	BasicService     BasicService
	DivertedTo       Address
	ServedUser       PartyNumber
	ActivatingUser   PartyNumber
}

func (a ActivateDiversionQArgs) EncodeArgs(w *ber.Writer) error {
	w.EncodeInt64(ber.UniversalTag(ber.TagEnumerated, false), int64(a.Procedure))
	w.EncodeInt64(ber.UniversalTag(ber.TagEnumerated, false), int64(a.BasicService))
	if err := a.DivertedTo.EncodeTagged(w, ber.UniversalTag(ber.TagSequence, true)); err != nil {
		return err
	}
	if err := a.ServedUser.Encode(w); err != nil {
		return err
	}
	return a.ActivatingUser.Encode(w)
}

func decodeActivateDiversionQArgs(r *ber.Reader) (any, error) {
	procedure, err := decodeEnumerated(r, "procedure")
	if err != nil {
		return nil, err
	}
	service, err := decodeEnumerated(r, "basic-service")
	if err != nil {
		return nil, err
	}
	_, divContent, err := r.ReadTagLength()
	if err != nil {
		return nil, wrapDecode("ActivateDiversionQ", "diverted-to", err)
	}
	divertedTo, err := DecodeAddress(divContent)
	if err != nil {
		return nil, err
	}
	served, err := DecodePartyNumber(r)
	if err != nil {
		return nil, err
	}
	activating, err := DecodePartyNumber(r)
	if err != nil {
		return nil, err
	}
	return ActivateDiversionQArgs{
		Procedure:      Procedure(procedure),
		BasicService:   BasicService(service),
		DivertedTo:     divertedTo,
		ServedUser:     served,
		ActivatingUser: activating,
	}, nil
}

func init() {
	registerCodec(OperationQsigCallTransferIdentify, codecEntry{
		decodeResultArgs: decodeCallTransferIdentifyResult,
		encodeArgs: func(w *ber.Writer, args any) error {
			return args.(CallTransferIdentifyResult).EncodeArgs(w)
		},
	})
	registerCodec(OperationQsigActivateDiversionQ, codecEntry{
		decodeInvokeArgs: decodeActivateDiversionQArgs,
		encodeArgs: func(w *ber.Writer, args any) error {
			return args.(ActivateDiversionQArgs).EncodeArgs(w)
		},
	})
}
