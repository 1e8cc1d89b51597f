package rose

import "github.com/rose-codec/rosebuf/ber"

// InvocationMode governs when a message-waiting notification should be
// delivered to the receiving user.
type InvocationMode uint8

const (
	InvocationDeferred InvocationMode = 0
	InvocationImmediate InvocationMode = 1
	InvocationCombined InvocationMode = 2
)

// MessageStatus distinguishes a mailbox message being added from one being
// removed, carried inside MessageID.
type MessageStatus uint8

const (
	MessageAdded   MessageStatus = 0
	MessageRemoved MessageStatus = 1
)

// MessageID names one mailbox message and whether it was added or removed.
type MessageID struct {
	ReferenceNumber uint16
	Status          MessageStatus
}

func (m MessageID) encode(w *ber.Writer) {
	w.EncodeInt64(ber.UniversalTag(ber.TagInteger, false), int64(m.ReferenceNumber))
	w.EncodeInt64(ber.UniversalTag(ber.TagEnumerated, false), int64(m.Status))
}

func decodeMessageID(r *ber.Reader) (MessageID, error) {
	refID, refSub, err := r.ReadTagLength()
	if err != nil || !refID.Universal(ber.TagInteger) {
		return MessageID{}, wrapDecode("MessageID", "reference-number", ErrUnexpectedTag)
	}
	ref, err := ber.DecodeInt64(refSub.Content())
	if err != nil || ref < 0 || ref > 65535 {
		return MessageID{}, wrapDecode("MessageID", "reference-number", ErrValueOutOfRange)
	}
	status, err := decodeEnumerated(r, "status")
	if err != nil {
		return MessageID{}, err
	}
	return MessageID{ReferenceNumber: uint16(ref), Status: MessageStatus(status)}, nil
}

// MWIActivateArgs is the Invoke argument for EtsiMWIActivate.
type MWIActivateArgs struct {
	ReceivingUser              PartyNumber
	BasicService               BasicService
	ControllingUser            *PartyNumber
	NumberOfMessages           *uint16
	ControllingUserProvidedNr  *PartyNumber
	Time                       *GeneralizedTime
	MessageID                  *MessageID
	Mode                       *InvocationMode
}

func (a MWIActivateArgs) EncodeArgs(w *ber.Writer) error {
	if err := a.ReceivingUser.Encode(w); err != nil {
		return err
	}
	w.EncodeInt64(ber.UniversalTag(ber.TagEnumerated, false), int64(a.BasicService))
	var innerErr error
	if a.ControllingUser != nil {
		w.Nested(ber.ContextTag(1, true), func(inner *ber.Writer) {
			innerErr = a.ControllingUser.Encode(inner)
		})
		if innerErr != nil {
			return innerErr
		}
	}
	if a.NumberOfMessages != nil {
		w.Nested(ber.ContextTag(2, true), func(inner *ber.Writer) {
			inner.EncodeInt64(ber.UniversalTag(ber.TagInteger, false), int64(*a.NumberOfMessages))
		})
	}
	if a.ControllingUserProvidedNr != nil {
		w.Nested(ber.ContextTag(3, true), func(inner *ber.Writer) {
			innerErr = a.ControllingUserProvidedNr.Encode(inner)
		})
		if innerErr != nil {
			return innerErr
		}
	}
	if a.Time != nil {
		w.Nested(ber.ContextTag(4, true), func(inner *ber.Writer) {
			innerErr = a.Time.Encode(inner)
		})
		if innerErr != nil {
			return innerErr
		}
	}
	if a.MessageID != nil {
		w.Nested(ber.ContextTag(5, true), func(inner *ber.Writer) {
			a.MessageID.encode(inner)
		})
	}
	if a.Mode != nil {
		w.Nested(ber.ContextTag(6, true), func(inner *ber.Writer) {
			inner.EncodeInt64(ber.UniversalTag(ber.TagEnumerated, false), int64(*a.Mode))
		})
	}
	return nil
}

func decodeMWIActivateArgs(r *ber.Reader) (any, error) {
	receiving, err := DecodePartyNumber(r)
	if err != nil {
		return nil, err
	}
	service, err := decodeEnumerated(r, "basic-service")
	if err != nil {
		return nil, err
	}
	args := MWIActivateArgs{ReceivingUser: receiving, BasicService: BasicService(service)}
	for r.Remaining() {
		id, err := r.PeekIdentifier()
		if err != nil {
			return nil, wrapDecode("MWIActivate", "", err)
		}
		switch {
		case id.ContextSpecific(1) && args.ControllingUser == nil:
			_, sub, err := r.ReadTagLength()
			if err != nil {
				return nil, wrapDecode("MWIActivate", "controlling-user", err)
			}
			n, err := DecodePartyNumber(sub)
			if err != nil {
				return nil, err
			}
			args.ControllingUser = &n
		case id.ContextSpecific(2) && args.NumberOfMessages == nil:
			_, sub, err := r.ReadTagLength()
			if err != nil {
				return nil, wrapDecode("MWIActivate", "number-of-messages", err)
			}
			numID, numSub, err := sub.ReadTagLength()
			if err != nil || !numID.Universal(ber.TagInteger) {
				return nil, wrapDecode("MWIActivate", "number-of-messages", ErrUnexpectedTag)
			}
			v, err := ber.DecodeInt64(numSub.Content())
			if err != nil || v < 0 || v > 65535 {
				return nil, wrapDecode("MWIActivate", "number-of-messages", ErrValueOutOfRange)
			}
			n := uint16(v)
			args.NumberOfMessages = &n
		case id.ContextSpecific(3) && args.ControllingUserProvidedNr == nil:
			_, sub, err := r.ReadTagLength()
			if err != nil {
				return nil, wrapDecode("MWIActivate", "controlling-user-provided-nr", err)
			}
			n, err := DecodePartyNumber(sub)
			if err != nil {
				return nil, err
			}
			args.ControllingUserProvidedNr = &n
		case id.ContextSpecific(4) && args.Time == nil:
			_, sub, err := r.ReadTagLength()
			if err != nil {
				return nil, wrapDecode("MWIActivate", "time", err)
			}
			t, err := DecodeGeneralizedTime(sub)
			if err != nil {
				return nil, err
			}
			args.Time = &t
		case id.ContextSpecific(5) && args.MessageID == nil:
			_, sub, err := r.ReadTagLength()
			if err != nil {
				return nil, wrapDecode("MWIActivate", "message-id", err)
			}
			m, err := decodeMessageID(sub)
			if err != nil {
				return nil, err
			}
			args.MessageID = &m
		case id.ContextSpecific(6) && args.Mode == nil:
			_, sub, err := r.ReadTagLength()
			if err != nil {
				return nil, wrapDecode("MWIActivate", "mode", err)
			}
			v, err := decodeEnumerated(sub, "mode")
			if err != nil {
				return nil, err
			}
			mode := InvocationMode(v)
			args.Mode = &mode
		default:
			return args, nil
		}
	}
	return args, nil
}

// MWIIndicateArgs is the Invoke argument for EtsiMWIIndicate: the same
// optional fields as MWIActivate minus the receiving-user/mandatory
// basic-service pair and the invocation mode, with basicService itself
// now optional.
type MWIIndicateArgs struct {
	ControllingUser           *PartyNumber
	BasicService              *BasicService
	NumberOfMessages          *uint16
	ControllingUserProvidedNr *PartyNumber
	Time                      *GeneralizedTime
	MessageID                 *MessageID
}

func (a MWIIndicateArgs) EncodeArgs(w *ber.Writer) error {
	var innerErr error
	if a.ControllingUser != nil {
		w.Nested(ber.ContextTag(1, true), func(inner *ber.Writer) {
			innerErr = a.ControllingUser.Encode(inner)
		})
		if innerErr != nil {
			return innerErr
		}
	}
	if a.BasicService != nil {
		w.Nested(ber.ContextTag(2, true), func(inner *ber.Writer) {
			inner.EncodeInt64(ber.UniversalTag(ber.TagEnumerated, false), int64(*a.BasicService))
		})
	}
	if a.NumberOfMessages != nil {
		w.Nested(ber.ContextTag(3, true), func(inner *ber.Writer) {
			inner.EncodeInt64(ber.UniversalTag(ber.TagInteger, false), int64(*a.NumberOfMessages))
		})
	}
	if a.ControllingUserProvidedNr != nil {
		w.Nested(ber.ContextTag(4, true), func(inner *ber.Writer) {
			innerErr = a.ControllingUserProvidedNr.Encode(inner)
		})
		if innerErr != nil {
			return innerErr
		}
	}
	if a.Time != nil {
		w.Nested(ber.ContextTag(5, true), func(inner *ber.Writer) {
			innerErr = a.Time.Encode(inner)
		})
		if innerErr != nil {
			return innerErr
		}
	}
	if a.MessageID != nil {
		w.Nested(ber.ContextTag(6, true), func(inner *ber.Writer) {
			a.MessageID.encode(inner)
		})
	}
	return nil
}

func decodeMWIIndicateArgs(r *ber.Reader) (any, error) {
	var args MWIIndicateArgs
	for r.Remaining() {
		id, err := r.PeekIdentifier()
		if err != nil {
			return nil, wrapDecode("MWIIndicate", "", err)
		}
		switch {
		case id.ContextSpecific(1) && args.ControllingUser == nil:
			_, sub, err := r.ReadTagLength()
			if err != nil {
				return nil, wrapDecode("MWIIndicate", "controlling-user", err)
			}
			n, err := DecodePartyNumber(sub)
			if err != nil {
				return nil, err
			}
			args.ControllingUser = &n
		case id.ContextSpecific(2) && args.BasicService == nil:
			_, sub, err := r.ReadTagLength()
			if err != nil {
				return nil, wrapDecode("MWIIndicate", "basic-service", err)
			}
			v, err := decodeEnumerated(sub, "basic-service")
			if err != nil {
				return nil, err
			}
			service := BasicService(v)
			args.BasicService = &service
		case id.ContextSpecific(3) && args.NumberOfMessages == nil:
			_, sub, err := r.ReadTagLength()
			if err != nil {
				return nil, wrapDecode("MWIIndicate", "number-of-messages", err)
			}
			numID, numSub, err := sub.ReadTagLength()
			if err != nil || !numID.Universal(ber.TagInteger) {
				return nil, wrapDecode("MWIIndicate", "number-of-messages", ErrUnexpectedTag)
			}
			v, err := ber.DecodeInt64(numSub.Content())
			if err != nil || v < 0 || v > 65535 {
				return nil, wrapDecode("MWIIndicate", "number-of-messages", ErrValueOutOfRange)
			}
			n := uint16(v)
			args.NumberOfMessages = &n
		case id.ContextSpecific(4) && args.ControllingUserProvidedNr == nil:
			_, sub, err := r.ReadTagLength()
			if err != nil {
				return nil, wrapDecode("MWIIndicate", "controlling-user-provided-nr", err)
			}
			n, err := DecodePartyNumber(sub)
			if err != nil {
				return nil, err
			}
			args.ControllingUserProvidedNr = &n
		case id.ContextSpecific(5) && args.Time == nil:
			_, sub, err := r.ReadTagLength()
			if err != nil {
				return nil, wrapDecode("MWIIndicate", "time", err)
			}
			t, err := DecodeGeneralizedTime(sub)
			if err != nil {
				return nil, err
			}
			args.Time = &t
		case id.ContextSpecific(6) && args.MessageID == nil:
			_, sub, err := r.ReadTagLength()
			if err != nil {
				return nil, wrapDecode("MWIIndicate", "message-id", err)
			}
			m, err := decodeMessageID(sub)
			if err != nil {
				return nil, err
			}
			args.MessageID = &m
		default:
			return args, nil
		}
	}
	return args, nil
}

func init() {
	registerCodec(OperationEtsiMWIActivate, codecEntry{
		decodeInvokeArgs: decodeMWIActivateArgs,
		encodeArgs: func(w *ber.Writer, args any) error {
			return args.(MWIActivateArgs).EncodeArgs(w)
		},
	})
	registerCodec(OperationEtsiMWIIndicate, codecEntry{
		decodeInvokeArgs: decodeMWIIndicateArgs,
		encodeArgs: func(w *ber.Writer, args any) error {
			return args.(MWIIndicateArgs).EncodeArgs(w)
		},
	})
}
