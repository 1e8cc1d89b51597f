package rose

import "github.com/rose-codec/rosebuf/ber"

// CompatibilityMode selects how strictly StatusRequest matches basic
// services against the line it asks about.
type CompatibilityMode uint8

const (
	CompatibilityAllBasicServices        CompatibilityMode = 0
	CompatibilityOneOrMoreBasicServices CompatibilityMode = 1
)

// StatusResult is the line-status value StatusRequest answers with.
type StatusResult uint8

const (
	StatusCompatibleAndFree StatusResult = 0
	StatusCompatibleAndBusy StatusResult = 1
	StatusIncompatible      StatusResult = 2
)

// StatusRequestArgs is the Invoke argument for EtsiStatusRequest. The BC/
// HLC/LLC triple that the source embeds as q931InfoElement is carried
// opaque via Q931IE, as elsewhere in this package.
type StatusRequestArgs struct {
	Q931IE         Q931IE
	Compatibility  CompatibilityMode
}

func (a StatusRequestArgs) EncodeArgs(w *ber.Writer) error {
	if err := a.Q931IE.Encode(w, ber.ApplicationTag(0, false)); err != nil {
		return err
	}
	w.EncodeInt64(ber.UniversalTag(ber.TagEnumerated, false), int64(a.Compatibility))
	return nil
}

func decodeStatusRequestArgs(r *ber.Reader) (any, error) {
	ieID, ieSub, err := r.ReadTagLength()
	if err != nil || ieID.Class != ber.ClassApplication {
		return nil, wrapDecode("StatusRequest", "q931-ie", ErrUnexpectedTag)
	}
	q931ie, err := DecodeQ931IE(ieSub)
	if err != nil {
		return nil, err
	}
	compat, err := decodeEnumerated(r, "compatibility-mode")
	if err != nil {
		return nil, err
	}
	return StatusRequestArgs{Q931IE: q931ie, Compatibility: CompatibilityMode(compat)}, nil
}

// StatusRequestResult is the ReturnResult argument for EtsiStatusRequest.
type StatusRequestResult struct {
	Status StatusResult
}

func (r StatusRequestResult) EncodeArgs(w *ber.Writer) error {
	w.EncodeInt64(ber.UniversalTag(ber.TagEnumerated, false), int64(r.Status))
	return nil
}

func decodeStatusRequestResult(r *ber.Reader) (any, error) {
	v, err := decodeEnumerated(r, "status")
	if err != nil {
		return nil, err
	}
	return StatusRequestResult{Status: StatusResult(v)}, nil
}

// RecallMode distinguishes a CCBS reservation that recalls any compatible
// line from one that recalls a specific party.
type RecallMode uint8

const (
	RecallGlobal   RecallMode = 0
	RecallSpecific RecallMode = 1
)

// CCBSRequestArgs is the Invoke argument for EtsiCCBSRequest.
type CCBSRequestArgs struct {
	CallLinkageID uint8 // 0..127
}

func (a CCBSRequestArgs) EncodeArgs(w *ber.Writer) error {
	if a.CallLinkageID > 127 {
		return ErrValueOutOfRange
	}
	w.EncodeInt64(ber.UniversalTag(ber.TagInteger, false), int64(a.CallLinkageID))
	return nil
}

func decodeCCBSRequestArgs(r *ber.Reader) (any, error) {
	id, sub, err := r.ReadTagLength()
	if err != nil || !id.Universal(ber.TagInteger) {
		return nil, wrapDecode("CCBSRequest", "call-linkage-id", ErrUnexpectedTag)
	}
	v, err := ber.DecodeInt64(sub.Content())
	if err != nil || v < 0 || v > 127 {
		return nil, wrapDecode("CCBSRequest", "call-linkage-id", ErrValueOutOfRange)
	}
	return CCBSRequestArgs{CallLinkageID: uint8(v)}, nil
}

// CCBSRequestResult is the ReturnResult argument for EtsiCCBSRequest.
type CCBSRequestResult struct {
	Recall        RecallMode
	CCBSReference uint8 // 0..127
}

func (r CCBSRequestResult) EncodeArgs(w *ber.Writer) error {
	if r.CCBSReference > 127 {
		return ErrValueOutOfRange
	}
	w.EncodeInt64(ber.UniversalTag(ber.TagEnumerated, false), int64(r.Recall))
	w.EncodeInt64(ber.UniversalTag(ber.TagInteger, false), int64(r.CCBSReference))
	return nil
}

func decodeCCBSRequestResult(r *ber.Reader) (any, error) {
	recall, err := decodeEnumerated(r, "recall-mode")
	if err != nil {
		return nil, err
	}
	refID, refSub, err := r.ReadTagLength()
	if err != nil || !refID.Universal(ber.TagInteger) {
		return nil, wrapDecode("CCBSRequest", "ccbs-reference", ErrUnexpectedTag)
	}
	v, err := ber.DecodeInt64(refSub.Content())
	if err != nil || v < 0 || v > 127 {
		return nil, wrapDecode("CCBSRequest", "ccbs-reference", ErrValueOutOfRange)
	}
	return CCBSRequestResult{Recall: RecallMode(recall), CCBSReference: uint8(v)}, nil
}

// CCBSInterrogateArgs is the Invoke argument for EtsiCCBSInterrogate.
type CCBSInterrogateArgs struct {
	APartyNumber         PartyNumber
	APartyNumberPresent  bool
	CCBSReferencePresent bool
	CCBSReference        uint8
}

func (a CCBSInterrogateArgs) EncodeArgs(w *ber.Writer) error {
	if a.CCBSReferencePresent {
		if a.CCBSReference > 127 {
			return ErrValueOutOfRange
		}
		w.EncodeInt64(ber.ContextTag(0, false), int64(a.CCBSReference))
	}
	if a.APartyNumberPresent {
		var innerErr error
		w.Nested(ber.ContextTag(1, true), func(inner *ber.Writer) {
			innerErr = a.APartyNumber.Encode(inner)
		})
		if innerErr != nil {
			return innerErr
		}
	}
	return nil
}

func decodeCCBSInterrogateArgs(r *ber.Reader) (any, error) {
	var args CCBSInterrogateArgs
	if r.Remaining() {
		if id, err := r.PeekIdentifier(); err == nil && id.ContextSpecific(0) {
			_, sub, err := r.ReadTagLength()
			if err != nil {
				return nil, wrapDecode("CCBSInterrogate", "ccbs-reference", err)
			}
			v, err := ber.DecodeInt64(sub.Content())
			if err != nil || v < 0 || v > 127 {
				return nil, wrapDecode("CCBSInterrogate", "ccbs-reference", ErrValueOutOfRange)
			}
			args.CCBSReferencePresent = true
			args.CCBSReference = uint8(v)
		}
	}
	if r.Remaining() {
		if id, err := r.PeekIdentifier(); err == nil && id.ContextSpecific(1) {
			_, sub, err := r.ReadTagLength()
			if err != nil {
				return nil, wrapDecode("CCBSInterrogate", "a-party-number", err)
			}
			number, err := DecodePartyNumber(sub)
			if err != nil {
				return nil, err
			}
			args.APartyNumberPresent = true
			args.APartyNumber = number
		}
	}
	return args, nil
}

// CallInformation is one element of a CCBSInterrogate call-details list.
type CallInformation struct {
	Q931IE          Q931IE
	AddressOfB      Address
	SubaddressOfA   PartySubaddress
	CCBSReference   uint8
}

// maxCallDetailsRecords mirrors struct roseEtsiCallDetailsList's reduced
// stack-array size.
const maxCallDetailsRecords = 5

// CCBSInterrogateResult is the ReturnResult argument for
// EtsiCCBSInterrogate.
type CCBSInterrogateResult struct {
	Recall      RecallMode
	CallDetails []CallInformation
}

func (r CCBSInterrogateResult) EncodeArgs(w *ber.Writer) error {
	if len(r.CallDetails) > maxCallDetailsRecords {
		return ErrValueOutOfRange
	}
	w.EncodeInt64(ber.UniversalTag(ber.TagEnumerated, false), int64(r.Recall))
	if len(r.CallDetails) == 0 {
		return nil
	}
	var innerErr error
	w.Nested(ber.UniversalTag(ber.TagSequence, true), func(list *ber.Writer) {
		for _, ci := range r.CallDetails {
			list.Nested(ber.UniversalTag(ber.TagSequence, true), func(item *ber.Writer) {
				if err := ci.AddressOfB.EncodeTagged(item, ber.UniversalTag(ber.TagSequence, true)); err != nil {
					innerErr = err
					return
				}
				if err := ci.Q931IE.Encode(item, ber.ApplicationTag(0, false)); err != nil {
					innerErr = err
					return
				}
				item.EncodeInt64(ber.UniversalTag(ber.TagInteger, false), int64(ci.CCBSReference))
				if ci.SubaddressOfA.Present() {
					if err := ci.SubaddressOfA.Encode(item); err != nil {
						innerErr = err
					}
				}
			})
		}
	})
	return innerErr
}

func decodeCCBSInterrogateResult(r *ber.Reader) (any, error) {
	recall, err := decodeEnumerated(r, "recall-mode")
	if err != nil {
		return nil, err
	}
	result := CCBSInterrogateResult{Recall: RecallMode(recall)}
	if !r.Remaining() {
		return result, nil
	}
	_, listContent, err := r.ReadTagLength()
	if err != nil {
		return nil, wrapDecode("CCBSInterrogate", "call-details", err)
	}
	for listContent.Remaining() {
		if len(result.CallDetails) >= maxCallDetailsRecords {
			return nil, wrapDecode("CCBSInterrogate", "call-details", ErrValueOutOfRange)
		}
		_, itemContent, err := listContent.ReadTagLength()
		if err != nil {
			return nil, wrapDecode("CallInformation", "", err)
		}
		_, addrContent, err := itemContent.ReadTagLength()
		if err != nil {
			return nil, wrapDecode("CallInformation", "address-of-b", err)
		}
		addressOfB, err := DecodeAddress(addrContent)
		if err != nil {
			return nil, err
		}
		ieID, ieSub, err := itemContent.ReadTagLength()
		if err != nil || ieID.Class != ber.ClassApplication {
			return nil, wrapDecode("CallInformation", "q931-ie", ErrUnexpectedTag)
		}
		q931ie, err := DecodeQ931IE(ieSub)
		if err != nil {
			return nil, err
		}
		refID, refSub, err := itemContent.ReadTagLength()
		if err != nil || !refID.Universal(ber.TagInteger) {
			return nil, wrapDecode("CallInformation", "ccbs-reference", ErrUnexpectedTag)
		}
		refVal, err := ber.DecodeInt64(refSub.Content())
		if err != nil {
			return nil, wrapDecode("CallInformation", "ccbs-reference", err)
		}
		ci := CallInformation{AddressOfB: addressOfB, Q931IE: q931ie, CCBSReference: uint8(refVal)}
		if itemContent.Remaining() {
			sub, err := DecodePartySubaddress(itemContent)
			if err != nil {
				return nil, err
			}
			ci.SubaddressOfA = sub
		}
		result.CallDetails = append(result.CallDetails, ci)
	}
	return result, nil
}

func init() {
	registerCodec(OperationEtsiStatusRequest, codecEntry{
		decodeInvokeArgs: decodeStatusRequestArgs,
		decodeResultArgs: decodeStatusRequestResult,
		encodeArgs: func(w *ber.Writer, args any) error {
			switch v := args.(type) {
			case StatusRequestArgs:
				return v.EncodeArgs(w)
			case StatusRequestResult:
				return v.EncodeArgs(w)
			default:
				return ErrUnsupportedCodec
			}
		},
	})
	registerCodec(OperationEtsiCCBSRequest, codecEntry{
		decodeInvokeArgs: decodeCCBSRequestArgs,
		decodeResultArgs: decodeCCBSRequestResult,
		encodeArgs: func(w *ber.Writer, args any) error {
			switch v := args.(type) {
			case CCBSRequestArgs:
				return v.EncodeArgs(w)
			case CCBSRequestResult:
				return v.EncodeArgs(w)
			default:
				return ErrUnsupportedCodec
			}
		},
	})
	registerCodec(OperationEtsiCCBSInterrogate, codecEntry{
		decodeInvokeArgs: decodeCCBSInterrogateArgs,
		decodeResultArgs: decodeCCBSInterrogateResult,
		encodeArgs: func(w *ber.Writer, args any) error {
			switch v := args.(type) {
			case CCBSInterrogateArgs:
				return v.EncodeArgs(w)
			case CCBSInterrogateResult:
				return v.EncodeArgs(w)
			default:
				return ErrUnsupportedCodec
			}
		},
	})
}
