package rose

import "github.com/rose-codec/rosebuf/ber"

// AdviceModeCombination enumerates the rate/interim/final charge provision
// combinations a ChargeRequest may ask for or be granted.
type AdviceModeCombination uint8

const (
	AdviceRate             AdviceModeCombination = 0
	AdviceRateInterim      AdviceModeCombination = 1
	AdviceRateFinal        AdviceModeCombination = 2
	AdviceInterim          AdviceModeCombination = 3
	AdviceFinal            AdviceModeCombination = 4
	AdviceInterimFinal     AdviceModeCombination = 5
	AdviceRateInterimFinal AdviceModeCombination = 6
)

// maxAdviceModeCombinations mirrors the SEQUENCE SIZE(0..7) bound.
const maxAdviceModeCombinations = 7

// ChargeRequestArgs is the Invoke argument for QsigChargeRequest.
type ChargeRequestArgs struct {
	Combinations []AdviceModeCombination
}

func (a ChargeRequestArgs) EncodeArgs(w *ber.Writer) error {
	if len(a.Combinations) > maxAdviceModeCombinations {
		return ErrValueOutOfRange
	}
	w.Nested(ber.UniversalTag(ber.TagSequence, true), func(inner *ber.Writer) {
		for _, c := range a.Combinations {
			inner.EncodeInt64(ber.UniversalTag(ber.TagEnumerated, false), int64(c))
		}
	})
	return nil
}

func decodeChargeRequestArgs(r *ber.Reader) (any, error) {
	_, listContent, err := r.ReadTagLength()
	if err != nil {
		return nil, wrapDecode("ChargeRequest", "advice-mode-combinations", err)
	}
	var args ChargeRequestArgs
	for listContent.Remaining() {
		if len(args.Combinations) >= maxAdviceModeCombinations {
			return nil, wrapDecode("ChargeRequest", "advice-mode-combinations", ErrValueOutOfRange)
		}
		v, err := decodeEnumerated(listContent, "advice-mode-combination")
		if err != nil {
			return nil, err
		}
		args.Combinations = append(args.Combinations, AdviceModeCombination(v))
	}
	return args, nil
}

// ChargeRequestResult is the ReturnResult argument for QsigChargeRequest.
type ChargeRequestResult struct {
	Combination AdviceModeCombination
}

func (r ChargeRequestResult) EncodeArgs(w *ber.Writer) error {
	w.EncodeInt64(ber.UniversalTag(ber.TagEnumerated, false), int64(r.Combination))
	return nil
}

func decodeChargeRequestResult(r *ber.Reader) (any, error) {
	v, err := decodeEnumerated(r, "advice-mode-combination")
	if err != nil {
		return nil, err
	}
	return ChargeRequestResult{Combination: AdviceModeCombination(v)}, nil
}

func init() {
	registerCodec(OperationQsigChargeRequest, codecEntry{
		decodeInvokeArgs: decodeChargeRequestArgs,
		decodeResultArgs: decodeChargeRequestResult,
		encodeArgs: func(w *ber.Writer, args any) error {
			switch v := args.(type) {
			case ChargeRequestArgs:
				return v.EncodeArgs(w)
			case ChargeRequestResult:
				return v.EncodeArgs(w)
			default:
				return ErrUnsupportedCodec
			}
		},
	})
}
