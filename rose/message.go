package rose

import "github.com/rose-codec/rosebuf/ber"

// ComponentType distinguishes the four ROSE component shapes.
type ComponentType uint8

const (
	ComponentInvalid ComponentType = iota
	ComponentInvoke
	ComponentResult
	ComponentError
	ComponentReject
)

const (
	tagInvoke = 1
	tagResult = 2
	tagError  = 3
	tagReject = 4
)

// ArgumentCodec is implemented by a per-operation argument or result value.
// Its operation's codecEntry (see registerCodec) calls it, so the generic
// envelope code never needs a type switch over every operation.
type ArgumentCodec interface {
	EncodeArgs(w *ber.Writer) error
}

// Invoke is the ROSE Invoke component: [1] IMPLICIT SEQUENCE { invokeId,
// linkedId OPTIONAL, operation, argument }.
type Invoke struct {
	InvokeID  int32
	LinkedID  *int32
	Operation OperationCode
	Args      any // decoded argument struct, nil if the operation carries none
}

// Result is the ROSE ReturnResult component. Operation is OperationNone
// when the invoke-id alone must disambiguate an anonymous result (spec.md
// §8 Scenario A and ETSI/Q.SIG's "no arguments" convention).
type Result struct {
	InvokeID  int32
	Operation OperationCode
	Args      any
}

// Error is the ROSE ReturnError component.
type Error struct {
	InvokeID int32
	Code     ErrorCode
}

// Reject is the ROSE Reject component. InvokeID is optional: a malformed
// component with no invoke-id at all still gets a Reject.
type Reject struct {
	InvokeID *int32
	Code     RejectCode
}

// Message is a decoded ROSE component, tagged by Type with exactly one of
// the four component fields populated.
type Message struct {
	Type   ComponentType
	Invoke Invoke
	Result Result
	Error  Error
	Reject Reject
}

// codecEntry holds an operation's argument/result decoders and its
// encoder. op_*.go init functions register one entry per operation in
// codecRegistry, a single map shared by every dialect, so envelope code
// and operation code share one table.
type codecEntry struct {
	decodeInvokeArgs func(r *ber.Reader) (any, error)
	decodeResultArgs func(r *ber.Reader) (any, error)
	encodeArgs       func(w *ber.Writer, args any) error
}

var codecRegistry = map[OperationCode]codecEntry{}

func registerCodec(op OperationCode, entry codecEntry) {
	codecRegistry[op] = entry
}

// EncodeInvoke appends the Invoke component: [1] IMPLICIT SEQUENCE.
// Under DialectDMS100, invoke-id itself selects the operation (see
// OperationFromDms100InvokeID) and there is no separate operation-value
// field, so that step is skipped entirely for that dialect.
func (c *Controller) EncodeInvoke(w *ber.Writer, msg Invoke) error {
	var innerErr error
	w.Nested(ber.ContextTag(tagInvoke, true), func(inner *ber.Writer) {
		inner.EncodeInt64(ber.UniversalTag(ber.TagInteger, false), int64(msg.InvokeID))
		if msg.LinkedID != nil {
			inner.EncodeInt64(ber.ContextTag(0, false), int64(*msg.LinkedID))
		}
		if c.dialect != DialectDMS100 {
			if err := c.encodeOperationCode(inner, msg.Operation); err != nil {
				innerErr = err
				return
			}
		}
		if msg.Args == nil {
			return
		}
		entry, ok := codecRegistry[msg.Operation]
		if !ok || entry.encodeArgs == nil {
			innerErr = ErrUnsupportedCodec
			return
		}
		if err := entry.encodeArgs(inner, msg.Args); err != nil {
			innerErr = err
		}
	})
	return wrapEncode("Invoke", "", innerErr)
}

// encodeOperationCode appends the operation-value field in the dialect's
// wire form: local INTEGER for ETSI/NI-2, global OBJECT IDENTIFIER for
// Q.SIG. DMS-100 has no separate operation-value field — its invoke-id
// slot is itself the selector — so callers must not reach this helper for
// that dialect's Invoke encoding (see op_dms100.go).
func (c *Controller) encodeOperationCode(w *ber.Writer, op OperationCode) error {
	switch c.dialect {
	case DialectQSIG:
		return w.EncodeOID(ber.UniversalTag(ber.TagObjectIdentifier, false), OIDForOperation(op))
	default:
		w.EncodeInt64(ber.UniversalTag(ber.TagInteger, false), int64(LocalValueForOperation(op)))
		return nil
	}
}

func (c *Controller) decodeOperationCode(r *ber.Reader) (OperationCode, error) {
	id, err := r.PeekIdentifier()
	if err != nil {
		return OperationUnknown, err
	}
	if id.Universal(ber.TagObjectIdentifier) {
		_, sub, err := r.ReadTagLength()
		if err != nil {
			return OperationUnknown, err
		}
		arcs, err := ber.DecodeOID(sub.Content())
		if err != nil {
			return OperationUnknown, err
		}
		return OperationFromOID(arcs), nil
	}
	_, sub, err := r.ReadTagLength()
	if err != nil {
		return OperationUnknown, err
	}
	v, err := ber.DecodeInt64(sub.Content())
	if err != nil {
		return OperationUnknown, err
	}
	return OperationFromLocalValue(int(v)), nil
}

// DecodeInvoke reads an Invoke component's content (the caller has already
// consumed the [1] tag/length via ReadTagLength).
func (c *Controller) DecodeInvoke(content *ber.Reader) (Invoke, error) {
	invokeID, err := decodeInt16Field(content, "invoke-id")
	if err != nil {
		return Invoke{}, err
	}
	msg := Invoke{InvokeID: invokeID}

	// DMS-100 RLT arguments open with their own [0] field, so no linked-id
	// is looked for under that dialect.
	if id, err := content.PeekIdentifier(); err == nil && id.ContextSpecific(0) && c.dialect != DialectDMS100 {
		_, sub, err := content.ReadTagLength()
		if err != nil {
			return Invoke{}, wrapDecode("Invoke", "linked-id", err)
		}
		v, err := ber.DecodeInt64(sub.Content())
		if err != nil {
			return Invoke{}, wrapDecode("Invoke", "linked-id", err)
		}
		linkedID := int32(v)
		msg.LinkedID = &linkedID
	}

	var op OperationCode
	if c.dialect == DialectDMS100 {
		op = OperationFromDms100InvokeID(int(invokeID))
	} else {
		op, err = c.decodeOperationCode(content)
		if err != nil {
			return Invoke{}, wrapDecode("Invoke", "operation", err)
		}
	}
	msg.Operation = op

	if content.Remaining() {
		entry, ok := codecRegistry[op]
		if !ok || entry.decodeInvokeArgs == nil {
			c.warn("rose: no invoke argument codec for operation %s, skipping remainder", op)
			content.SkipToEnd()
			return msg, nil
		}
		args, err := entry.decodeInvokeArgs(content)
		if err != nil {
			return Invoke{}, wrapDecode("Invoke", "args", err)
		}
		msg.Args = args
	}
	return msg, nil
}

// EncodeResult appends the ReturnResult component: [2] IMPLICIT SEQUENCE
// { invokeId, result SEQUENCE { operation, args } OPTIONAL }. When
// Operation is OperationNone the inner SEQUENCE is omitted entirely
// (anonymous result, spec.md §8 Scenario A). DMS-100 never carries a
// separate operation-value field (see EncodeInvoke); its result args, when
// present, are appended directly after invoke-id with no enclosing
// SEQUENCE or operation field, the caller having already fixed the
// operation via the matching invoke-id.
func (c *Controller) EncodeResult(w *ber.Writer, msg Result) error {
	var innerErr error
	w.Nested(ber.ContextTag(tagResult, true), func(inner *ber.Writer) {
		inner.EncodeInt64(ber.UniversalTag(ber.TagInteger, false), int64(msg.InvokeID))
		if msg.Operation == OperationNone {
			return
		}
		if c.dialect == DialectDMS100 {
			if msg.Args == nil {
				return
			}
			entry, ok := codecRegistry[msg.Operation]
			if !ok || entry.encodeArgs == nil {
				innerErr = ErrUnsupportedCodec
				return
			}
			innerErr = entry.encodeArgs(inner, msg.Args)
			return
		}
		inner.Nested(ber.UniversalTag(ber.TagSequence, true), func(result *ber.Writer) {
			if err := c.encodeOperationCode(result, msg.Operation); err != nil {
				innerErr = err
				return
			}
			if msg.Args == nil {
				return
			}
			entry, ok := codecRegistry[msg.Operation]
			if !ok || entry.encodeArgs == nil {
				innerErr = ErrUnsupportedCodec
				return
			}
			if err := entry.encodeArgs(result, msg.Args); err != nil {
				innerErr = err
			}
		})
	})
	return wrapEncode("Result", "", innerErr)
}

// DecodeResult reads a ReturnResult component's content.
func (c *Controller) DecodeResult(content *ber.Reader) (Result, error) {
	invokeID, err := decodeInt16Field(content, "invoke-id")
	if err != nil {
		return Result{}, err
	}
	msg := Result{InvokeID: invokeID, Operation: OperationNone}
	if !content.Remaining() {
		return msg, nil
	}

	if c.dialect == DialectDMS100 {
		op := OperationDms100RLTOperationInd
		msg.Operation = op
		entry, ok := codecRegistry[op]
		if !ok || entry.decodeResultArgs == nil {
			c.warn("rose: no result argument codec for operation %s, skipping remainder", op)
			content.SkipToEnd()
			return msg, nil
		}
		args, err := entry.decodeResultArgs(content)
		if err != nil {
			return Result{}, wrapDecode("Result", "args", err)
		}
		msg.Args = args
		return msg, nil
	}

	_, resultContent, err := content.ReadTagLength()
	if err != nil {
		return Result{}, wrapDecode("Result", "result", err)
	}

	op, err := c.decodeOperationCode(resultContent)
	if err != nil {
		return Result{}, wrapDecode("Result", "operation", err)
	}
	msg.Operation = op

	if resultContent.Remaining() {
		entry, ok := codecRegistry[op]
		if !ok || entry.decodeResultArgs == nil {
			c.warn("rose: no result argument codec for operation %s, skipping remainder", op)
			resultContent.SkipToEnd()
			return msg, nil
		}
		args, err := entry.decodeResultArgs(resultContent)
		if err != nil {
			return Result{}, wrapDecode("Result", "args", err)
		}
		msg.Args = args
	}
	return msg, nil
}

// EncodeError appends the ReturnError component: [3] IMPLICIT SEQUENCE
// { invokeId, errorValue }. errorValue is an OBJECT IDENTIFIER under
// Q.SIG (reusing the operation OID arc scheme with the error code in the
// trailing position) and a local INTEGER otherwise.
func (c *Controller) EncodeError(w *ber.Writer, msg Error) error {
	w.Nested(ber.ContextTag(tagError, true), func(inner *ber.Writer) {
		inner.EncodeInt64(ber.UniversalTag(ber.TagInteger, false), int64(msg.InvokeID))
		if c.dialect == DialectQSIG {
			arcs := append(append([]uint32{}, qsigOIDPrefix...), uint32(msg.Code))
			inner.EncodeOID(ber.UniversalTag(ber.TagObjectIdentifier, false), arcs)
			return
		}
		inner.EncodeInt64(ber.UniversalTag(ber.TagInteger, false), int64(LocalValueForError(msg.Code)))
	})
	return nil
}

// DecodeError reads a ReturnError component's content.
func (c *Controller) DecodeError(content *ber.Reader) (Error, error) {
	invokeID, err := decodeInt16Field(content, "invoke-id")
	if err != nil {
		return Error{}, err
	}
	codeID, codeSub, err := content.ReadTagLength()
	if err != nil {
		return Error{}, wrapDecode("Error", "error-value", err)
	}
	if codeID.Universal(ber.TagObjectIdentifier) {
		arcs, err := ber.DecodeOID(codeSub.Content())
		if err != nil || len(arcs) != len(qsigOIDPrefix)+1 {
			return Error{}, wrapDecode("Error", "error-value", ErrUnexpectedTag)
		}
		return Error{InvokeID: invokeID, Code: ErrorFromLocalValue(int(arcs[len(arcs)-1]))}, nil
	}
	if !codeID.Universal(ber.TagInteger) {
		return Error{}, wrapDecode("Error", "error-value", ErrUnexpectedTag)
	}
	v, err := ber.DecodeInt64(codeSub.Content())
	if err != nil {
		return Error{}, wrapDecode("Error", "error-value", err)
	}
	return Error{InvokeID: invokeID, Code: ErrorFromLocalValue(int(v))}, nil
}

// EncodeReject appends the Reject component: [4] IMPLICIT SEQUENCE
// { invokeId OPTIONAL (INTEGER or NULL), problem }. The problem integer's
// context-class tag identifies its RejectBase.
func (c *Controller) EncodeReject(w *ber.Writer, msg Reject) error {
	w.Nested(ber.ContextTag(tagReject, true), func(inner *ber.Writer) {
		if msg.InvokeID != nil {
			inner.EncodeInt64(ber.UniversalTag(ber.TagInteger, false), int64(*msg.InvokeID))
		} else {
			inner.EncodeNull(ber.UniversalTag(ber.TagNull, false))
		}
		inner.EncodeInt64(ber.ContextTag(uint32(msg.Code.Base), false), int64(msg.Code.Offset))
	})
	return nil
}

// DecodeReject reads a Reject component's content.
func (c *Controller) DecodeReject(content *ber.Reader) (Reject, error) {
	r := Reject{}
	id, err := content.PeekIdentifier()
	if err != nil {
		return Reject{}, wrapDecode("Reject", "invoke-id", err)
	}
	if id.Universal(ber.TagNull) {
		if _, _, err := content.ReadTagLength(); err != nil {
			return Reject{}, wrapDecode("Reject", "invoke-id", err)
		}
	} else {
		invokeID, err := decodeInt16Field(content, "invoke-id")
		if err != nil {
			return Reject{}, err
		}
		r.InvokeID = &invokeID
	}

	problemID, problemSub, err := content.ReadTagLength()
	if err != nil || problemID.Class != ber.ClassContextSpecific {
		return Reject{}, wrapDecode("Reject", "problem", ErrUnexpectedTag)
	}
	offset, err := ber.DecodeInt64(problemSub.Content())
	if err != nil {
		return Reject{}, wrapDecode("Reject", "problem", err)
	}
	r.Code = RejectCode{Base: RejectBase(problemID.Number), Offset: uint8(offset)}
	return r, nil
}

// Decode reads one ROSE component (Invoke/Result/Error/Reject) from r,
// dispatching on its outer tag.
func (c *Controller) Decode(r *ber.Reader) (Message, error) {
	id, content, err := r.ReadTagLength()
	if err != nil {
		return Message{}, wrapDecode("Message", "", err)
	}
	if id.Class != ber.ClassContextSpecific {
		return Message{}, wrapDecode("Message", "", ErrUnexpectedTag)
	}
	switch id.Number {
	case tagInvoke:
		inv, err := c.DecodeInvoke(content)
		if err != nil {
			return Message{}, err
		}
		c.trace("rose: decoded invoke id=%d op=%s", inv.InvokeID, inv.Operation)
		return Message{Type: ComponentInvoke, Invoke: inv}, nil
	case tagResult:
		res, err := c.DecodeResult(content)
		if err != nil {
			return Message{}, err
		}
		c.trace("rose: decoded result id=%d op=%s", res.InvokeID, res.Operation)
		return Message{Type: ComponentResult, Result: res}, nil
	case tagError:
		e, err := c.DecodeError(content)
		if err != nil {
			return Message{}, err
		}
		c.trace("rose: decoded error id=%d code=%s", e.InvokeID, e.Code)
		return Message{Type: ComponentError, Error: e}, nil
	case tagReject:
		rej, err := c.DecodeReject(content)
		if err != nil {
			return Message{}, err
		}
		c.trace("rose: decoded reject code=%s", rej.Code)
		return Message{Type: ComponentReject, Reject: rej}, nil
	default:
		return Message{}, wrapDecode("Message", "", ErrUnexpectedTag)
	}
}

// Encode appends a ROSE component per msg.Type.
func (c *Controller) Encode(w *ber.Writer, msg Message) error {
	switch msg.Type {
	case ComponentInvoke:
		return c.EncodeInvoke(w, msg.Invoke)
	case ComponentResult:
		return c.EncodeResult(w, msg.Result)
	case ComponentError:
		return c.EncodeError(w, msg.Error)
	case ComponentReject:
		return c.EncodeReject(w, msg.Reject)
	default:
		return ErrValueOutOfRange
	}
}

func decodeInt16Field(r *ber.Reader, field string) (int32, error) {
	id, sub, err := r.ReadTagLength()
	if err != nil {
		return 0, wrapDecode("Message", field, err)
	}
	if !id.Universal(ber.TagInteger) {
		return 0, wrapDecode("Message", field, ErrUnexpectedTag)
	}
	v, err := ber.DecodeInt64(sub.Content())
	if err != nil {
		return 0, wrapDecode("Message", field, err)
	}
	if v < -32768 || v > 32767 {
		return 0, wrapDecode("Message", field, ErrValueOutOfRange)
	}
	return int32(v), nil
}
