package rose

import "github.com/rose-codec/rosebuf/ber"

// LinkIdArgs carries a bare 16-bit LinkId, shared by EtsiExplicitEctExecute
// (as the Invoke argument) and EtsiEctLinkIdRequest (as the Result).
type LinkIdArgs struct {
	LinkID int16
}

func (a LinkIdArgs) EncodeArgs(w *ber.Writer) error {
	w.EncodeInt64(ber.UniversalTag(ber.TagInteger, false), int64(a.LinkID))
	return nil
}

func decodeLinkIdArgs(r *ber.Reader) (any, error) {
	id, sub, err := r.ReadTagLength()
	if err != nil || !id.Universal(ber.TagInteger) {
		return nil, wrapDecode("LinkId", "", ErrUnexpectedTag)
	}
	v, err := ber.DecodeInt64(sub.Content())
	if err != nil || v < -32768 || v > 32767 {
		return nil, wrapDecode("LinkId", "", ErrValueOutOfRange)
	}
	return LinkIdArgs{LinkID: int16(v)}, nil
}

func init() {
	registerCodec(OperationEtsiExplicitEctExecute, codecEntry{
		decodeInvokeArgs: decodeLinkIdArgs,
		encodeArgs: func(w *ber.Writer, args any) error {
			return args.(LinkIdArgs).EncodeArgs(w)
		},
	})
	registerCodec(OperationEtsiEctLinkIdRequest, codecEntry{
		decodeResultArgs: decodeLinkIdArgs,
		encodeArgs: func(w *ber.Writer, args any) error {
			return args.(LinkIdArgs).EncodeArgs(w)
		},
	})
}
