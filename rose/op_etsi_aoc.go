package rose

import "github.com/rose-codec/rosebuf/ber"

// ChargingCase selects which point in the call ChargingRequest asks about.
type ChargingCase uint8

const (
	ChargingAtCallSetup ChargingCase = 0
	ChargingDuringCall  ChargingCase = 1
	ChargingAtCallEnd   ChargingCase = 2
)

// AmountMultiplier is the power-of-ten scale applied to a currency amount.
type AmountMultiplier uint8

const (
	MultiplierOneThousandth AmountMultiplier = 0
	MultiplierOneHundredth  AmountMultiplier = 1
	MultiplierOneTenth      AmountMultiplier = 2
	MultiplierOne           AmountMultiplier = 3
	MultiplierTen           AmountMultiplier = 4
	MultiplierHundred       AmountMultiplier = 5
	MultiplierThousand      AmountMultiplier = 6
)

// Amount is a 24-bit currency quantity with its multiplier, shared by every
// AOC currency-info variant.
type Amount struct {
	Currency   uint32 // 0..16777215
	Multiplier AmountMultiplier
}

func (a Amount) encode(w *ber.Writer) error {
	if a.Currency > 0xFFFFFF {
		return ErrValueOutOfRange
	}
	w.EncodeInt64(ber.ContextTag(1, false), int64(a.Currency))
	w.EncodeInt64(ber.ContextTag(2, false), int64(a.Multiplier))
	return nil
}

func decodeAmount(r *ber.Reader) (Amount, error) {
	curID, curSub, err := r.ReadTagLength()
	if err != nil || !curID.ContextSpecific(1) {
		return Amount{}, wrapDecode("Amount", "currency-amount", ErrUnexpectedTag)
	}
	v, err := ber.DecodeInt64(curSub.Content())
	if err != nil || v < 0 || v > 0xFFFFFF {
		return Amount{}, wrapDecode("Amount", "currency-amount", ErrValueOutOfRange)
	}
	multID, multSub, err := r.ReadTagLength()
	if err != nil || !multID.ContextSpecific(2) {
		return Amount{}, wrapDecode("Amount", "multiplier", ErrUnexpectedTag)
	}
	mv, err := ber.DecodeInt64(multSub.Content())
	if err != nil {
		return Amount{}, wrapDecode("Amount", "multiplier", err)
	}
	return Amount{Currency: uint32(v), Multiplier: AmountMultiplier(mv)}, nil
}

const maxCurrencyNameLen = 10

// DurationCurrency is AOC billed by elapsed time.
type DurationCurrency struct {
	Amount         Amount
	ChargingType   uint8 // continuousCharging(0) / stepFunction(1)
	Time           uint32
	Granularity    *uint32
	CurrencyName   []byte // IA5String, length 1..10
}

func (d DurationCurrency) encode(w *ber.Writer) error {
	if len(d.CurrencyName) < 1 || len(d.CurrencyName) > maxCurrencyNameLen {
		return ErrValueOutOfRange
	}
	w.Nested(ber.ContextTag(1, false), func(inner *ber.Writer) {
		inner.WriteBytes(d.CurrencyName)
	})
	var innerErr error
	w.Nested(ber.ContextTag(2, true), func(inner *ber.Writer) {
		innerErr = d.Amount.encode(inner)
	})
	if innerErr != nil {
		return innerErr
	}
	w.EncodeInt64(ber.ContextTag(3, false), int64(d.ChargingType))
	w.EncodeInt64(ber.ContextTag(4, false), int64(d.Time))
	if d.Granularity != nil {
		w.EncodeInt64(ber.ContextTag(5, false), int64(*d.Granularity))
	}
	return nil
}

// AOCDCurrencyArgs is the Invoke argument for EtsiAOCDCurrency — a narrowed
// DurationCurrency/FlatRateCurrency/VolumeRateCurrency CHOICE carrying only
// the duration-billed branch, the form spec.md's AOC scenario exercises.
type AOCDCurrencyArgs struct {
	BillingAvailable bool // false encodes chargeNotAvailable NULL
	Duration         DurationCurrency
}

func (a AOCDCurrencyArgs) EncodeArgs(w *ber.Writer) error {
	if !a.BillingAvailable {
		w.EncodeNull(ber.ContextTag(0, false))
		return nil
	}
	var innerErr error
	w.Nested(ber.ContextTag(1, true), func(inner *ber.Writer) {
		innerErr = a.Duration.encode(inner)
	})
	return innerErr
}

// decodeDurationCurrency reads a DurationCurrency SEQUENCE's content
// (caller has already consumed the enclosing tag/length).
func decodeDurationCurrency(sub *ber.Reader) (DurationCurrency, error) {
	nameID, nameSub, err := sub.ReadTagLength()
	if err != nil || !nameID.ContextSpecific(1) {
		return DurationCurrency{}, wrapDecode("DurationCurrency", "currency-name", ErrUnexpectedTag)
	}
	name := append([]byte{}, nameSub.Content()...)
	if len(name) < 1 || len(name) > maxCurrencyNameLen {
		return DurationCurrency{}, wrapDecode("DurationCurrency", "currency-name", ErrValueOutOfRange)
	}
	amtID, amtSub, err := sub.ReadTagLength()
	if err != nil || !amtID.ContextSpecific(2) {
		return DurationCurrency{}, wrapDecode("DurationCurrency", "amount", ErrUnexpectedTag)
	}
	amount, err := decodeAmount(amtSub)
	if err != nil {
		return DurationCurrency{}, err
	}
	typeID, typeSub, err := sub.ReadTagLength()
	if err != nil || !typeID.ContextSpecific(3) {
		return DurationCurrency{}, wrapDecode("DurationCurrency", "charging-type", ErrUnexpectedTag)
	}
	chargingType, err := ber.DecodeInt64(typeSub.Content())
	if err != nil {
		return DurationCurrency{}, wrapDecode("DurationCurrency", "charging-type", err)
	}
	timeID, timeSub, err := sub.ReadTagLength()
	if err != nil || !timeID.ContextSpecific(4) {
		return DurationCurrency{}, wrapDecode("DurationCurrency", "time", ErrUnexpectedTag)
	}
	timeVal, err := ber.DecodeInt64(timeSub.Content())
	if err != nil {
		return DurationCurrency{}, wrapDecode("DurationCurrency", "time", err)
	}
	duration := DurationCurrency{
		Amount:       amount,
		ChargingType: uint8(chargingType),
		Time:         uint32(timeVal),
		CurrencyName: name,
	}
	if sub.Remaining() {
		granID, granSub, err := sub.ReadTagLength()
		if err != nil || !granID.ContextSpecific(5) {
			return DurationCurrency{}, wrapDecode("DurationCurrency", "granularity", ErrUnexpectedTag)
		}
		g, err := ber.DecodeInt64(granSub.Content())
		if err != nil {
			return DurationCurrency{}, wrapDecode("DurationCurrency", "granularity", err)
		}
		granularity := uint32(g)
		duration.Granularity = &granularity
	}
	return duration, nil
}

func decodeAOCDCurrencyArgs(r *ber.Reader) (any, error) {
	id, sub, err := r.ReadTagLength()
	if err != nil {
		return nil, wrapDecode("AOCDCurrency", "", err)
	}
	if id.ContextSpecific(0) {
		return AOCDCurrencyArgs{}, nil
	}
	if !id.ContextSpecific(1) {
		return nil, wrapDecode("AOCDCurrency", "", ErrUnexpectedTag)
	}
	duration, err := decodeDurationCurrency(sub)
	if err != nil {
		return nil, err
	}
	return AOCDCurrencyArgs{BillingAvailable: true, Duration: duration}, nil
}

// FlatRateCurrency is AOC billed as a single flat amount.
type FlatRateCurrency struct {
	Amount       Amount
	CurrencyName []byte // IA5String, length 1..10
}

func (f FlatRateCurrency) encode(w *ber.Writer) error {
	if len(f.CurrencyName) < 1 || len(f.CurrencyName) > maxCurrencyNameLen {
		return ErrValueOutOfRange
	}
	w.Nested(ber.ContextTag(1, false), func(inner *ber.Writer) {
		inner.WriteBytes(f.CurrencyName)
	})
	var innerErr error
	w.Nested(ber.ContextTag(2, true), func(inner *ber.Writer) {
		innerErr = f.Amount.encode(inner)
	})
	return innerErr
}

func decodeFlatRateCurrency(sub *ber.Reader) (FlatRateCurrency, error) {
	nameID, nameSub, err := sub.ReadTagLength()
	if err != nil || !nameID.ContextSpecific(1) {
		return FlatRateCurrency{}, wrapDecode("FlatRateCurrency", "currency-name", ErrUnexpectedTag)
	}
	name := append([]byte{}, nameSub.Content()...)
	if len(name) < 1 || len(name) > maxCurrencyNameLen {
		return FlatRateCurrency{}, wrapDecode("FlatRateCurrency", "currency-name", ErrValueOutOfRange)
	}
	amtID, amtSub, err := sub.ReadTagLength()
	if err != nil || !amtID.ContextSpecific(2) {
		return FlatRateCurrency{}, wrapDecode("FlatRateCurrency", "amount", ErrUnexpectedTag)
	}
	amount, err := decodeAmount(amtSub)
	if err != nil {
		return FlatRateCurrency{}, err
	}
	return FlatRateCurrency{Amount: amount, CurrencyName: name}, nil
}

// VolumeUnit selects what a VolumeRateCurrency's amount is charged per.
type VolumeUnit uint8

const (
	VolumeUnitOctet   VolumeUnit = 0
	VolumeUnitSegment VolumeUnit = 1
	VolumeUnitMessage VolumeUnit = 2
)

// VolumeRateCurrency is AOC billed per octet/segment/message of data.
type VolumeRateCurrency struct {
	Amount       Amount
	CurrencyName []byte // IA5String, length 1..10
	Unit         VolumeUnit
}

func (v VolumeRateCurrency) encode(w *ber.Writer) error {
	if len(v.CurrencyName) < 1 || len(v.CurrencyName) > maxCurrencyNameLen {
		return ErrValueOutOfRange
	}
	w.Nested(ber.ContextTag(1, false), func(inner *ber.Writer) {
		inner.WriteBytes(v.CurrencyName)
	})
	var innerErr error
	w.Nested(ber.ContextTag(2, true), func(inner *ber.Writer) {
		innerErr = v.Amount.encode(inner)
	})
	if innerErr != nil {
		return innerErr
	}
	w.EncodeInt64(ber.ContextTag(3, false), int64(v.Unit))
	return nil
}

func decodeVolumeRateCurrency(sub *ber.Reader) (VolumeRateCurrency, error) {
	nameID, nameSub, err := sub.ReadTagLength()
	if err != nil || !nameID.ContextSpecific(1) {
		return VolumeRateCurrency{}, wrapDecode("VolumeRateCurrency", "currency-name", ErrUnexpectedTag)
	}
	name := append([]byte{}, nameSub.Content()...)
	if len(name) < 1 || len(name) > maxCurrencyNameLen {
		return VolumeRateCurrency{}, wrapDecode("VolumeRateCurrency", "currency-name", ErrValueOutOfRange)
	}
	amtID, amtSub, err := sub.ReadTagLength()
	if err != nil || !amtID.ContextSpecific(2) {
		return VolumeRateCurrency{}, wrapDecode("VolumeRateCurrency", "amount", ErrUnexpectedTag)
	}
	amount, err := decodeAmount(amtSub)
	if err != nil {
		return VolumeRateCurrency{}, err
	}
	unitID, unitSub, err := sub.ReadTagLength()
	if err != nil || !unitID.ContextSpecific(3) {
		return VolumeRateCurrency{}, wrapDecode("VolumeRateCurrency", "unit", ErrUnexpectedTag)
	}
	unit, err := ber.DecodeInt64(unitSub.Content())
	if err != nil {
		return VolumeRateCurrency{}, wrapDecode("VolumeRateCurrency", "unit", err)
	}
	return VolumeRateCurrency{Amount: amount, CurrencyName: name, Unit: VolumeUnit(unit)}, nil
}

// ChargedItem identifies what service an AOCSCurrencyInfo record bills.
type ChargedItem uint8

const (
	ChargedBasicCommunication ChargedItem = 0
	ChargedCallAttempt        ChargedItem = 1
	ChargedCallSetup          ChargedItem = 2
	ChargedUserToUserInfo     ChargedItem = 3
	ChargedSupplementaryServ  ChargedItem = 4
)

// CurrencyInfoKind selects AOCSCurrencyInfo's inner CHOICE arm.
type CurrencyInfoKind uint8

const (
	CurrencyInfoSpecialChargingCode       CurrencyInfoKind = 0
	CurrencyInfoDuration                  CurrencyInfoKind = 1
	CurrencyInfoFlatRate                  CurrencyInfoKind = 2
	CurrencyInfoVolumeRate                CurrencyInfoKind = 3
	CurrencyInfoFreeOfCharge              CurrencyInfoKind = 4
	CurrencyInfoNotAvailable              CurrencyInfoKind = 5
	CurrencyInfoFreeOfChargeFromBeginning CurrencyInfoKind = 6
)

// maxAOCSCurrencyInfoRecords matches AOCSCurrencyInfoList's ASN.1 bound
// (SEQUENCE SIZE(1..10) OF AOCSCurrencyInfo).
const maxAOCSCurrencyInfoRecords = 10

// AOCSCurrencyInfo is one entry of an AOCSCurrencyInfoList: a charged item
// plus a CHOICE of how it is billed.
type AOCSCurrencyInfo struct {
	ChargedItem         ChargedItem
	Kind                CurrencyInfoKind
	SpecialChargingCode uint8 // 1..10, Kind == CurrencyInfoSpecialChargingCode
	Duration            *DurationCurrency
	FlatRate            *FlatRateCurrency
	VolumeRate          *VolumeRateCurrency
}

func (a AOCSCurrencyInfo) encode(w *ber.Writer) error {
	var innerErr error
	w.Nested(ber.UniversalTag(ber.TagSequence, true), func(inner *ber.Writer) {
		inner.EncodeInt64(ber.UniversalTag(ber.TagEnumerated, false), int64(a.ChargedItem))
		switch a.Kind {
		case CurrencyInfoSpecialChargingCode:
			inner.EncodeInt64(ber.UniversalTag(ber.TagInteger, false), int64(a.SpecialChargingCode))
		case CurrencyInfoDuration:
			if a.Duration == nil {
				innerErr = ErrValueOutOfRange
				return
			}
			inner.Nested(ber.ContextTag(1, true), func(d *ber.Writer) {
				innerErr = a.Duration.encode(d)
			})
		case CurrencyInfoFlatRate:
			if a.FlatRate == nil {
				innerErr = ErrValueOutOfRange
				return
			}
			inner.Nested(ber.ContextTag(2, true), func(d *ber.Writer) {
				innerErr = a.FlatRate.encode(d)
			})
		case CurrencyInfoVolumeRate:
			if a.VolumeRate == nil {
				innerErr = ErrValueOutOfRange
				return
			}
			inner.Nested(ber.ContextTag(3, true), func(d *ber.Writer) {
				innerErr = a.VolumeRate.encode(d)
			})
		case CurrencyInfoFreeOfCharge:
			inner.EncodeNull(ber.ContextTag(4, false))
		case CurrencyInfoNotAvailable:
			inner.EncodeNull(ber.ContextTag(5, false))
		case CurrencyInfoFreeOfChargeFromBeginning:
			inner.EncodeNull(ber.ContextTag(6, false))
		default:
			innerErr = ErrUnsupportedCodec
		}
	})
	return innerErr
}

func decodeAOCSCurrencyInfo(r *ber.Reader) (AOCSCurrencyInfo, error) {
	_, seq, err := r.ReadTagLength()
	if err != nil {
		return AOCSCurrencyInfo{}, wrapDecode("AOCSCurrencyInfo", "", err)
	}
	chargedID, chargedSub, err := seq.ReadTagLength()
	if err != nil || !chargedID.Universal(ber.TagEnumerated) {
		return AOCSCurrencyInfo{}, wrapDecode("AOCSCurrencyInfo", "charged-item", ErrUnexpectedTag)
	}
	chargedVal, err := ber.DecodeInt64(chargedSub.Content())
	if err != nil {
		return AOCSCurrencyInfo{}, wrapDecode("AOCSCurrencyInfo", "charged-item", err)
	}
	info := AOCSCurrencyInfo{ChargedItem: ChargedItem(chargedVal)}

	kindID, kindSub, err := seq.ReadTagLength()
	if err != nil {
		return AOCSCurrencyInfo{}, wrapDecode("AOCSCurrencyInfo", "choice", err)
	}
	switch {
	case kindID.Universal(ber.TagInteger):
		v, err := ber.DecodeInt64(kindSub.Content())
		if err != nil {
			return AOCSCurrencyInfo{}, wrapDecode("AOCSCurrencyInfo", "special-charging-code", err)
		}
		info.Kind = CurrencyInfoSpecialChargingCode
		info.SpecialChargingCode = uint8(v)
	case kindID.ContextSpecific(1):
		duration, err := decodeDurationCurrency(kindSub)
		if err != nil {
			return AOCSCurrencyInfo{}, err
		}
		info.Kind = CurrencyInfoDuration
		info.Duration = &duration
	case kindID.ContextSpecific(2):
		flatRate, err := decodeFlatRateCurrency(kindSub)
		if err != nil {
			return AOCSCurrencyInfo{}, err
		}
		info.Kind = CurrencyInfoFlatRate
		info.FlatRate = &flatRate
	case kindID.ContextSpecific(3):
		volumeRate, err := decodeVolumeRateCurrency(kindSub)
		if err != nil {
			return AOCSCurrencyInfo{}, err
		}
		info.Kind = CurrencyInfoVolumeRate
		info.VolumeRate = &volumeRate
	case kindID.ContextSpecific(4):
		info.Kind = CurrencyInfoFreeOfCharge
	case kindID.ContextSpecific(5):
		info.Kind = CurrencyInfoNotAvailable
	case kindID.ContextSpecific(6):
		info.Kind = CurrencyInfoFreeOfChargeFromBeginning
	default:
		return AOCSCurrencyInfo{}, wrapDecode("AOCSCurrencyInfo", "choice", ErrUnexpectedTag)
	}
	return info, nil
}

// RecordedUnits is one entry of a RecordedUnitsList: a count of charged
// units with an optional type.
type RecordedUnits struct {
	NumberOfUnits uint32 // 0..16777215, 24-bit; valid when Available
	Available     bool
	TypeOfUnit    *uint8 // 1..16, optional
}

func (u RecordedUnits) encode(w *ber.Writer) error {
	if u.Available {
		if u.NumberOfUnits > 0xFFFFFF {
			return ErrValueOutOfRange
		}
		w.EncodeInt64(ber.UniversalTag(ber.TagInteger, false), int64(u.NumberOfUnits))
	} else {
		w.EncodeNull(ber.UniversalTag(ber.TagNull, false))
	}
	if u.TypeOfUnit != nil {
		if *u.TypeOfUnit < 1 || *u.TypeOfUnit > 16 {
			return ErrValueOutOfRange
		}
		w.EncodeInt64(ber.UniversalTag(ber.TagInteger, false), int64(*u.TypeOfUnit))
	}
	return nil
}

func decodeRecordedUnits(r *ber.Reader) (RecordedUnits, error) {
	id, sub, err := r.ReadTagLength()
	if err != nil {
		return RecordedUnits{}, wrapDecode("RecordedUnits", "", err)
	}
	var units RecordedUnits
	switch {
	case id.Universal(ber.TagNull):
		units.Available = false
	case id.Universal(ber.TagInteger):
		v, err := ber.DecodeInt64(sub.Content())
		if err != nil || v < 0 || v > 0xFFFFFF {
			return RecordedUnits{}, wrapDecode("RecordedUnits", "number-of-units", ErrValueOutOfRange)
		}
		units.Available = true
		units.NumberOfUnits = uint32(v)
	default:
		return RecordedUnits{}, wrapDecode("RecordedUnits", "", ErrUnexpectedTag)
	}
	if r.Remaining() {
		if id, err := r.PeekIdentifier(); err == nil && id.Universal(ber.TagInteger) {
			_, typeSub, err := r.ReadTagLength()
			if err != nil {
				return RecordedUnits{}, wrapDecode("RecordedUnits", "type-of-unit", err)
			}
			v, err := ber.DecodeInt64(typeSub.Content())
			if err != nil || v < 1 || v > 16 {
				return RecordedUnits{}, wrapDecode("RecordedUnits", "type-of-unit", ErrValueOutOfRange)
			}
			t := uint8(v)
			units.TypeOfUnit = &t
		}
	}
	return units, nil
}

// maxRecordedUnitsRecords matches RecordedUnitsList's ASN.1 bound
// (SEQUENCE SIZE(1..32) OF RecordedUnits).
const maxRecordedUnitsRecords = 32

// AOCDChargingUnitArgs is the Invoke argument for EtsiAOCDChargingUnit — the
// RecordedUnitsList-billed counterpart to AOCDCurrencyArgs.
type AOCDChargingUnitArgs struct {
	BillingAvailable bool // false encodes chargeNotAvailable NULL
	FreeOfCharge     bool
	Recorded         []RecordedUnits
}

func (a AOCDChargingUnitArgs) EncodeArgs(w *ber.Writer) error {
	if !a.BillingAvailable {
		w.EncodeNull(ber.ContextTag(0, false))
		return nil
	}
	if a.FreeOfCharge {
		w.EncodeNull(ber.ContextTag(1, false))
		return nil
	}
	if len(a.Recorded) < 1 || len(a.Recorded) > maxRecordedUnitsRecords {
		return ErrValueOutOfRange
	}
	var innerErr error
	w.Nested(ber.ContextTag(2, true), func(inner *ber.Writer) {
		for _, u := range a.Recorded {
			inner.Nested(ber.UniversalTag(ber.TagSequence, true), func(item *ber.Writer) {
				if innerErr = u.encode(item); innerErr != nil {
					return
				}
			})
			if innerErr != nil {
				return
			}
		}
	})
	return innerErr
}

func decodeAOCDChargingUnitArgs(r *ber.Reader) (any, error) {
	id, sub, err := r.ReadTagLength()
	if err != nil {
		return nil, wrapDecode("AOCDChargingUnit", "", err)
	}
	switch {
	case id.ContextSpecific(0):
		return AOCDChargingUnitArgs{}, nil
	case id.ContextSpecific(1):
		return AOCDChargingUnitArgs{BillingAvailable: true, FreeOfCharge: true}, nil
	case id.ContextSpecific(2):
		var recorded []RecordedUnits
		for sub.Remaining() {
			if len(recorded) == maxRecordedUnitsRecords {
				return nil, wrapDecode("AOCDChargingUnit", "recorded-units-list", ErrValueOutOfRange)
			}
			_, itemContent, err := sub.ReadTagLength()
			if err != nil {
				return nil, wrapDecode("RecordedUnits", "", err)
			}
			u, err := decodeRecordedUnits(itemContent)
			if err != nil {
				return nil, err
			}
			recorded = append(recorded, u)
		}
		if len(recorded) < 1 {
			return nil, wrapDecode("AOCDChargingUnit", "recorded-units-list", ErrValueOutOfRange)
		}
		return AOCDChargingUnitArgs{BillingAvailable: true, Recorded: recorded}, nil
	default:
		return nil, wrapDecode("AOCDChargingUnit", "", ErrUnexpectedTag)
	}
}

// ChargingRequestArgs is the Invoke argument for EtsiChargingRequest.
type ChargingRequestArgs struct {
	Case ChargingCase
}

func (a ChargingRequestArgs) EncodeArgs(w *ber.Writer) error {
	w.EncodeInt64(ber.UniversalTag(ber.TagEnumerated, false), int64(a.Case))
	return nil
}

func decodeChargingRequestArgs(r *ber.Reader) (any, error) {
	v, err := decodeEnumerated(r, "charging-case")
	if err != nil {
		return nil, err
	}
	return ChargingRequestArgs{Case: ChargingCase(v)}, nil
}

// ChargingRequestResult is the ReturnResult argument for
// EtsiChargingRequest: a three-way CHOICE between the fuller
// AOCSCurrencyInfoList (tag [0]), a special-arrangement code (tag [1]),
// and chargingInfoFollows (tag [2]).
type ChargingRequestResult struct {
	CurrencyInfo          []AOCSCurrencyInfo
	HasCurrencyInfo       bool
	SpecialArrangement    uint8
	HasSpecialArrangement bool
	ChargingInfoFollows   bool
}

func (r ChargingRequestResult) EncodeArgs(w *ber.Writer) error {
	switch {
	case r.HasCurrencyInfo:
		if len(r.CurrencyInfo) < 1 || len(r.CurrencyInfo) > maxAOCSCurrencyInfoRecords {
			return ErrValueOutOfRange
		}
		var innerErr error
		w.Nested(ber.ContextTag(0, true), func(inner *ber.Writer) {
			for _, rec := range r.CurrencyInfo {
				if innerErr = rec.encode(inner); innerErr != nil {
					return
				}
			}
		})
		return innerErr
	case r.HasSpecialArrangement:
		w.EncodeInt64(ber.ContextTag(1, false), int64(r.SpecialArrangement))
	case r.ChargingInfoFollows:
		w.EncodeNull(ber.ContextTag(2, false))
	default:
		return ErrUnsupportedCodec
	}
	return nil
}

func decodeChargingRequestResult(r *ber.Reader) (any, error) {
	id, sub, err := r.ReadTagLength()
	if err != nil {
		return nil, wrapDecode("ChargingRequest", "result", err)
	}
	switch {
	case id.ContextSpecific(0):
		var records []AOCSCurrencyInfo
		for sub.Remaining() {
			if len(records) == maxAOCSCurrencyInfoRecords {
				return nil, wrapDecode("ChargingRequest", "currency-info-list", ErrValueOutOfRange)
			}
			rec, err := decodeAOCSCurrencyInfo(sub)
			if err != nil {
				return nil, err
			}
			records = append(records, rec)
		}
		if len(records) < 1 {
			return nil, wrapDecode("ChargingRequest", "currency-info-list", ErrValueOutOfRange)
		}
		return ChargingRequestResult{HasCurrencyInfo: true, CurrencyInfo: records}, nil
	case id.ContextSpecific(1):
		v, err := ber.DecodeInt64(sub.Content())
		if err != nil {
			return nil, wrapDecode("ChargingRequest", "special-arrangement", err)
		}
		return ChargingRequestResult{HasSpecialArrangement: true, SpecialArrangement: uint8(v)}, nil
	case id.ContextSpecific(2):
		return ChargingRequestResult{ChargingInfoFollows: true}, nil
	default:
		return nil, wrapDecode("ChargingRequest", "result", ErrUnexpectedTag)
	}
}

func init() {
	registerCodec(OperationEtsiAOCDCurrency, codecEntry{
		decodeInvokeArgs: decodeAOCDCurrencyArgs,
		encodeArgs: func(w *ber.Writer, args any) error {
			return args.(AOCDCurrencyArgs).EncodeArgs(w)
		},
	})
	registerCodec(OperationEtsiAOCDChargingUnit, codecEntry{
		decodeInvokeArgs: decodeAOCDChargingUnitArgs,
		encodeArgs: func(w *ber.Writer, args any) error {
			return args.(AOCDChargingUnitArgs).EncodeArgs(w)
		},
	})
	registerCodec(OperationEtsiChargingRequest, codecEntry{
		decodeInvokeArgs: decodeChargingRequestArgs,
		decodeResultArgs: decodeChargingRequestResult,
		encodeArgs: func(w *ber.Writer, args any) error {
			switch v := args.(type) {
			case ChargingRequestArgs:
				return v.EncodeArgs(w)
			case ChargingRequestResult:
				return v.EncodeArgs(w)
			default:
				return ErrUnsupportedCodec
			}
		},
	})
}
