package rose

import "github.com/rose-codec/rosebuf/ber"

// MsgCentreIDKind is the MsgCentreId CHOICE discriminator.
type MsgCentreIDKind uint8

const (
	MsgCentreInteger       MsgCentreIDKind = 0
	MsgCentreNumber        MsgCentreIDKind = 1
	MsgCentreNumericString MsgCentreIDKind = 2
)

// MsgCentreID identifies the message centre that activated a mailbox.
type MsgCentreID struct {
	Kind   MsgCentreIDKind
	Value  uint16      // Kind == MsgCentreInteger
	Number PartyNumber // Kind == MsgCentreNumber
	Str    []byte      // Kind == MsgCentreNumericString, length 1..10
}

func (m MsgCentreID) encode(w *ber.Writer) error {
	switch m.Kind {
	case MsgCentreInteger:
		w.EncodeInt64(ber.ContextTag(0, false), int64(m.Value))
		return nil
	case MsgCentreNumber:
		var innerErr error
		w.Nested(ber.ContextTag(1, true), func(inner *ber.Writer) {
			innerErr = m.Number.Encode(inner)
		})
		return innerErr
	case MsgCentreNumericString:
		if len(m.Str) < 1 || len(m.Str) > maxCurrencyNameLen {
			return ErrValueOutOfRange
		}
		w.EncodeOctetString(ber.ContextTag(2, false), m.Str)
		return nil
	default:
		return ErrValueOutOfRange
	}
}

func decodeMsgCentreID(r *ber.Reader) (MsgCentreID, error) {
	id, sub, err := r.ReadTagLength()
	if err != nil || id.Class != ber.ClassContextSpecific {
		return MsgCentreID{}, wrapDecode("MsgCentreId", "", ErrUnexpectedTag)
	}
	switch id.Number {
	case 0:
		v, err := ber.DecodeInt64(sub.Content())
		if err != nil || v < 0 || v > 65535 {
			return MsgCentreID{}, wrapDecode("MsgCentreId", "integer", ErrValueOutOfRange)
		}
		return MsgCentreID{Kind: MsgCentreInteger, Value: uint16(v)}, nil
	case 1:
		number, err := DecodePartyNumber(sub)
		if err != nil {
			return MsgCentreID{}, err
		}
		return MsgCentreID{Kind: MsgCentreNumber, Number: number}, nil
	case 2:
		str, err := ber.DecodeOctetString(sub.Content(), maxCurrencyNameLen)
		if err != nil || len(str) < 1 {
			return MsgCentreID{}, wrapDecode("MsgCentreId", "numeric-string", ErrValueOutOfRange)
		}
		return MsgCentreID{Kind: MsgCentreNumericString, Str: str}, nil
	default:
		return MsgCentreID{}, wrapDecode("MsgCentreId", "", ErrUnexpectedTag)
	}
}

// QsigMWIActivateArgs is the Invoke argument for QsigMWIActivate.
type QsigMWIActivateArgs struct {
	ServedUser         PartyNumber
	BasicService       BasicService
	MsgCentreID        *MsgCentreID
	NumberOfMessages   *uint16
	OriginatingNumber  *PartyNumber
	Timestamp          *GeneralizedTime
	Priority           *uint8 // 0..9
}

func (a QsigMWIActivateArgs) EncodeArgs(w *ber.Writer) error {
	if err := a.ServedUser.Encode(w); err != nil {
		return err
	}
	w.EncodeInt64(ber.UniversalTag(ber.TagEnumerated, false), int64(a.BasicService))
	if a.MsgCentreID != nil {
		if err := a.MsgCentreID.encode(w); err != nil {
			return err
		}
	}
	if a.NumberOfMessages != nil {
		w.EncodeInt64(ber.ContextTag(3, false), int64(*a.NumberOfMessages))
	}
	if a.OriginatingNumber != nil {
		var innerErr error
		w.Nested(ber.ContextTag(4, true), func(inner *ber.Writer) {
			innerErr = a.OriginatingNumber.Encode(inner)
		})
		if innerErr != nil {
			return innerErr
		}
	}
	if a.Timestamp != nil {
		if err := a.Timestamp.Encode(w); err != nil {
			return err
		}
	}
	if a.Priority != nil {
		if *a.Priority > 9 {
			return ErrValueOutOfRange
		}
		w.EncodeInt64(ber.ContextTag(5, false), int64(*a.Priority))
	}
	return nil
}

func decodeQsigMWIActivateArgs(r *ber.Reader) (any, error) {
	served, err := DecodePartyNumber(r)
	if err != nil {
		return nil, err
	}
	service, err := decodeEnumerated(r, "basic-service")
	if err != nil {
		return nil, err
	}
	args := QsigMWIActivateArgs{ServedUser: served, BasicService: BasicService(service)}
	for r.Remaining() {
		id, err := r.PeekIdentifier()
		if err != nil {
			return nil, wrapDecode("QsigMWIActivate", "", err)
		}
		switch {
		case (id.ContextSpecific(0) || id.ContextSpecific(1) || id.ContextSpecific(2)) && args.MsgCentreID == nil:
			m, err := decodeMsgCentreID(r)
			if err != nil {
				return nil, err
			}
			args.MsgCentreID = &m
		case id.ContextSpecific(3) && args.NumberOfMessages == nil:
			_, sub, err := r.ReadTagLength()
			if err != nil {
				return nil, wrapDecode("QsigMWIActivate", "number-of-messages", err)
			}
			v, err := ber.DecodeInt64(sub.Content())
			if err != nil || v < 0 || v > 65535 {
				return nil, wrapDecode("QsigMWIActivate", "number-of-messages", ErrValueOutOfRange)
			}
			n := uint16(v)
			args.NumberOfMessages = &n
		case id.ContextSpecific(4) && args.OriginatingNumber == nil:
			_, sub, err := r.ReadTagLength()
			if err != nil {
				return nil, wrapDecode("QsigMWIActivate", "originating-number", err)
			}
			n, err := DecodePartyNumber(sub)
			if err != nil {
				return nil, err
			}
			args.OriginatingNumber = &n
		case id.Universal(ber.TagGeneralizedTime) && args.Timestamp == nil:
			t, err := DecodeGeneralizedTime(r)
			if err != nil {
				return nil, err
			}
			args.Timestamp = &t
		case id.ContextSpecific(5) && args.Priority == nil:
			_, sub, err := r.ReadTagLength()
			if err != nil {
				return nil, wrapDecode("QsigMWIActivate", "priority", err)
			}
			v, err := ber.DecodeInt64(sub.Content())
			if err != nil || v < 0 || v > 9 {
				return nil, wrapDecode("QsigMWIActivate", "priority", ErrValueOutOfRange)
			}
			p := uint8(v)
			args.Priority = &p
		default:
			return args, nil
		}
	}
	return args, nil
}

// QsigMWIInterrogateArgs is the Invoke argument for QsigMWIInterrogate.
type QsigMWIInterrogateArgs struct {
	ServedUser   PartyNumber
	BasicService BasicService
	MsgCentreID  *MsgCentreID
}

func (a QsigMWIInterrogateArgs) EncodeArgs(w *ber.Writer) error {
	if err := a.ServedUser.Encode(w); err != nil {
		return err
	}
	w.EncodeInt64(ber.UniversalTag(ber.TagEnumerated, false), int64(a.BasicService))
	if a.MsgCentreID != nil {
		if err := a.MsgCentreID.encode(w); err != nil {
			return err
		}
	}
	return nil
}

func decodeQsigMWIInterrogateArgs(r *ber.Reader) (any, error) {
	served, err := DecodePartyNumber(r)
	if err != nil {
		return nil, err
	}
	service, err := decodeEnumerated(r, "basic-service")
	if err != nil {
		return nil, err
	}
	args := QsigMWIInterrogateArgs{ServedUser: served, BasicService: BasicService(service)}
	if r.Remaining() {
		if id, err := r.PeekIdentifier(); err == nil &&
			(id.ContextSpecific(0) || id.ContextSpecific(1) || id.ContextSpecific(2)) {
			m, err := decodeMsgCentreID(r)
			if err != nil {
				return nil, err
			}
			args.MsgCentreID = &m
		}
	}
	return args, nil
}

// QsigMWIInterrogateResElt is one mailbox's status, an element of
// MWIInterrogateRes.
type QsigMWIInterrogateResElt struct {
	BasicService      BasicService
	MsgCentreID       *MsgCentreID
	NumberOfMessages  *uint16
	OriginatingNumber *PartyNumber
	Timestamp         *GeneralizedTime
	Priority          *uint8 // 0..9
}

func (e QsigMWIInterrogateResElt) encode(w *ber.Writer) error {
	var innerErr error
	w.Nested(ber.UniversalTag(ber.TagSequence, true), func(inner *ber.Writer) {
		inner.EncodeInt64(ber.UniversalTag(ber.TagEnumerated, false), int64(e.BasicService))
		if e.MsgCentreID != nil {
			if innerErr = e.MsgCentreID.encode(inner); innerErr != nil {
				return
			}
		}
		if e.NumberOfMessages != nil {
			inner.EncodeInt64(ber.ContextTag(3, false), int64(*e.NumberOfMessages))
		}
		if e.OriginatingNumber != nil {
			inner.Nested(ber.ContextTag(4, true), func(d *ber.Writer) {
				innerErr = e.OriginatingNumber.Encode(d)
			})
			if innerErr != nil {
				return
			}
		}
		if e.Timestamp != nil {
			if innerErr = e.Timestamp.Encode(inner); innerErr != nil {
				return
			}
		}
		if e.Priority != nil {
			if *e.Priority > 9 {
				innerErr = ErrValueOutOfRange
				return
			}
			inner.EncodeInt64(ber.ContextTag(5, false), int64(*e.Priority))
		}
	})
	return innerErr
}

func decodeQsigMWIInterrogateResElt(r *ber.Reader) (QsigMWIInterrogateResElt, error) {
	_, seq, err := r.ReadTagLength()
	if err != nil {
		return QsigMWIInterrogateResElt{}, wrapDecode("MWIInterrogateResElt", "", err)
	}
	service, err := decodeEnumerated(seq, "basic-service")
	if err != nil {
		return QsigMWIInterrogateResElt{}, err
	}
	elt := QsigMWIInterrogateResElt{BasicService: BasicService(service)}
	for seq.Remaining() {
		id, err := seq.PeekIdentifier()
		if err != nil {
			return QsigMWIInterrogateResElt{}, wrapDecode("MWIInterrogateResElt", "", err)
		}
		switch {
		case (id.ContextSpecific(0) || id.ContextSpecific(1) || id.ContextSpecific(2)) && elt.MsgCentreID == nil:
			m, err := decodeMsgCentreID(seq)
			if err != nil {
				return QsigMWIInterrogateResElt{}, err
			}
			elt.MsgCentreID = &m
		case id.ContextSpecific(3) && elt.NumberOfMessages == nil:
			_, sub, err := seq.ReadTagLength()
			if err != nil {
				return QsigMWIInterrogateResElt{}, wrapDecode("MWIInterrogateResElt", "number-of-messages", err)
			}
			v, err := ber.DecodeInt64(sub.Content())
			if err != nil || v < 0 || v > 65535 {
				return QsigMWIInterrogateResElt{}, wrapDecode("MWIInterrogateResElt", "number-of-messages", ErrValueOutOfRange)
			}
			n := uint16(v)
			elt.NumberOfMessages = &n
		case id.ContextSpecific(4) && elt.OriginatingNumber == nil:
			_, sub, err := seq.ReadTagLength()
			if err != nil {
				return QsigMWIInterrogateResElt{}, wrapDecode("MWIInterrogateResElt", "originating-number", err)
			}
			n, err := DecodePartyNumber(sub)
			if err != nil {
				return QsigMWIInterrogateResElt{}, err
			}
			elt.OriginatingNumber = &n
		case id.Universal(ber.TagGeneralizedTime) && elt.Timestamp == nil:
			t, err := DecodeGeneralizedTime(seq)
			if err != nil {
				return QsigMWIInterrogateResElt{}, err
			}
			elt.Timestamp = &t
		case id.ContextSpecific(5) && elt.Priority == nil:
			_, sub, err := seq.ReadTagLength()
			if err != nil {
				return QsigMWIInterrogateResElt{}, wrapDecode("MWIInterrogateResElt", "priority", err)
			}
			v, err := ber.DecodeInt64(sub.Content())
			if err != nil || v < 0 || v > 9 {
				return QsigMWIInterrogateResElt{}, wrapDecode("MWIInterrogateResElt", "priority", ErrValueOutOfRange)
			}
			p := uint8(v)
			elt.Priority = &p
		default:
			return elt, nil
		}
	}
	return elt, nil
}

// maxMWIInterrogateResRecords matches MWIInterrogateRes's ASN.1 bound
// (SEQUENCE SIZE(1..10) OF MWIInterrogateResElt).
const maxMWIInterrogateResRecords = 10

// QsigMWIInterrogateResult is the ReturnResult argument for
// QsigMWIInterrogate.
type QsigMWIInterrogateResult struct {
	Mailboxes []QsigMWIInterrogateResElt
}

func (r QsigMWIInterrogateResult) EncodeArgs(w *ber.Writer) error {
	if len(r.Mailboxes) < 1 || len(r.Mailboxes) > maxMWIInterrogateResRecords {
		return ErrValueOutOfRange
	}
	for _, elt := range r.Mailboxes {
		if err := elt.encode(w); err != nil {
			return err
		}
	}
	return nil
}

func decodeQsigMWIInterrogateResult(r *ber.Reader) (any, error) {
	var mailboxes []QsigMWIInterrogateResElt
	for r.Remaining() {
		if len(mailboxes) == maxMWIInterrogateResRecords {
			return nil, wrapDecode("MWIInterrogateRes", "", ErrValueOutOfRange)
		}
		elt, err := decodeQsigMWIInterrogateResElt(r)
		if err != nil {
			return nil, err
		}
		mailboxes = append(mailboxes, elt)
	}
	if len(mailboxes) < 1 {
		return nil, wrapDecode("MWIInterrogateRes", "", ErrValueOutOfRange)
	}
	return QsigMWIInterrogateResult{Mailboxes: mailboxes}, nil
}

func init() {
	registerCodec(OperationQsigMWIActivate, codecEntry{
		decodeInvokeArgs: decodeQsigMWIActivateArgs,
		encodeArgs: func(w *ber.Writer, args any) error {
			return args.(QsigMWIActivateArgs).EncodeArgs(w)
		},
	})
	registerCodec(OperationQsigMWIInterrogate, codecEntry{
		decodeInvokeArgs: decodeQsigMWIInterrogateArgs,
		decodeResultArgs: decodeQsigMWIInterrogateResult,
		encodeArgs: func(w *ber.Writer, args any) error {
			switch v := args.(type) {
			case QsigMWIInterrogateArgs:
				return v.EncodeArgs(w)
			case QsigMWIInterrogateResult:
				return v.EncodeArgs(w)
			default:
				return ErrUnsupportedCodec
			}
		},
	})
}
