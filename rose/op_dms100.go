package rose

import "github.com/rose-codec/rosebuf/ber"

// maxDms100CallID mirrors the callId INTEGER (0..16777215) bound shared by
// both RLT_OperationInd and RLT_ThirdParty.
const maxDms100CallID = 16777215

// RLTOperationIndResult is the bare result carried by Dms100RLTOperationInd:
// callId [0] IMPLICIT INTEGER (0..16777215). DMS-100 has no operation-value
// field on either Invoke or Result (see EncodeInvoke/EncodeResult), so this
// is encoded directly with no enclosing SEQUENCE.
type RLTOperationIndResult struct {
	CallID uint32
}

func (r RLTOperationIndResult) EncodeArgs(w *ber.Writer) error {
	if r.CallID > maxDms100CallID {
		return ErrValueOutOfRange
	}
	w.EncodeInt64(ber.ContextTag(0, false), int64(r.CallID))
	return nil
}

func decodeRLTOperationIndResult(r *ber.Reader) (any, error) {
	id, sub, err := r.ReadTagLength()
	if err != nil || !id.ContextSpecific(0) {
		return nil, wrapDecode("RLTOperationInd", "call-id", ErrUnexpectedTag)
	}
	v, err := ber.DecodeInt64(sub.Content())
	if err != nil || v < 0 || v > maxDms100CallID {
		return nil, wrapDecode("RLTOperationInd", "call-id", ErrValueOutOfRange)
	}
	return RLTOperationIndResult{CallID: uint32(v)}, nil
}

// RLTThirdPartyArgs is the Invoke argument for Dms100RLTThirdParty:
// callId [0] IMPLICIT INTEGER (0..16777215), reason [1] IMPLICIT INTEGER.
type RLTThirdPartyArgs struct {
	CallID uint32
	Reason int32
}

func (a RLTThirdPartyArgs) EncodeArgs(w *ber.Writer) error {
	if a.CallID > maxDms100CallID {
		return ErrValueOutOfRange
	}
	w.EncodeInt64(ber.ContextTag(0, false), int64(a.CallID))
	w.EncodeInt64(ber.ContextTag(1, false), int64(a.Reason))
	return nil
}

func decodeRLTThirdPartyArgs(r *ber.Reader) (any, error) {
	callIDTag, callIDSub, err := r.ReadTagLength()
	if err != nil || !callIDTag.ContextSpecific(0) {
		return nil, wrapDecode("RLTThirdParty", "call-id", ErrUnexpectedTag)
	}
	callID, err := ber.DecodeInt64(callIDSub.Content())
	if err != nil || callID < 0 || callID > maxDms100CallID {
		return nil, wrapDecode("RLTThirdParty", "call-id", ErrValueOutOfRange)
	}
	reasonTag, reasonSub, err := r.ReadTagLength()
	if err != nil || !reasonTag.ContextSpecific(1) {
		return nil, wrapDecode("RLTThirdParty", "reason", ErrUnexpectedTag)
	}
	reason, err := ber.DecodeInt64(reasonSub.Content())
	if err != nil {
		return nil, wrapDecode("RLTThirdParty", "reason", err)
	}
	return RLTThirdPartyArgs{CallID: uint32(callID), Reason: int32(reason)}, nil
}

func init() {
	registerCodec(OperationDms100RLTOperationInd, codecEntry{
		decodeResultArgs: decodeRLTOperationIndResult,
		encodeArgs: func(w *ber.Writer, args any) error {
			return args.(RLTOperationIndResult).EncodeArgs(w)
		},
	})
	registerCodec(OperationDms100RLTThirdParty, codecEntry{
		decodeInvokeArgs: decodeRLTThirdPartyArgs,
		encodeArgs: func(w *ber.Writer, args any) error {
			return args.(RLTThirdPartyArgs).EncodeArgs(w)
		},
	})
}
