package rose

import "github.com/rose-codec/rosebuf/ber"

// InformationFollowingArgs is the Invoke argument for Ni2InformationFollowing:
// a bare ENUMERATED whose value the source leaves unassigned meaning to
// ("Unknown enumerated value"), so it is carried through uninterpreted.
type InformationFollowingArgs struct {
	Value uint8
}

func (a InformationFollowingArgs) EncodeArgs(w *ber.Writer) error {
	w.EncodeInt64(ber.UniversalTag(ber.TagEnumerated, false), int64(a.Value))
	return nil
}

func decodeInformationFollowingArgs(r *ber.Reader) (any, error) {
	v, err := decodeEnumerated(r, "value")
	if err != nil {
		return nil, err
	}
	if v < 0 || v > 255 {
		return nil, wrapDecode("InformationFollowing", "value", ErrValueOutOfRange)
	}
	return InformationFollowingArgs{Value: uint8(v)}, nil
}

// InitiateTransferArgs is the Invoke argument for Ni2InitiateTransfer:
// SEQUENCE { callReference INTEGER } -- 16 bit number.
type InitiateTransferArgs struct {
	CallReference uint16
}

func (a InitiateTransferArgs) EncodeArgs(w *ber.Writer) error {
	w.Nested(ber.UniversalTag(ber.TagSequence, true), func(inner *ber.Writer) {
		inner.EncodeInt64(ber.UniversalTag(ber.TagInteger, false), int64(a.CallReference))
	})
	return nil
}

func decodeInitiateTransferArgs(r *ber.Reader) (any, error) {
	_, seqContent, err := r.ReadTagLength()
	if err != nil {
		return nil, wrapDecode("InitiateTransfer", "call-reference", err)
	}
	refID, refSub, err := seqContent.ReadTagLength()
	if err != nil || !refID.Universal(ber.TagInteger) {
		return nil, wrapDecode("InitiateTransfer", "call-reference", ErrUnexpectedTag)
	}
	v, err := ber.DecodeInt64(refSub.Content())
	if err != nil || v < 0 || v > 65535 {
		return nil, wrapDecode("InitiateTransfer", "call-reference", ErrValueOutOfRange)
	}
	return InitiateTransferArgs{CallReference: uint16(v)}, nil
}

func init() {
	registerCodec(OperationNi2InformationFollowing, codecEntry{
		decodeInvokeArgs: decodeInformationFollowingArgs,
		encodeArgs: func(w *ber.Writer, args any) error {
			return args.(InformationFollowingArgs).EncodeArgs(w)
		},
	})
	registerCodec(OperationNi2InitiateTransfer, codecEntry{
		decodeInvokeArgs: decodeInitiateTransferArgs,
		encodeArgs: func(w *ber.Writer, args any) error {
			return args.(InitiateTransferArgs).EncodeArgs(w)
		},
	})
}
