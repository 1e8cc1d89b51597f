package rose

import "github.com/rose-codec/rosebuf/ber"

// EntityType qualifies the source or destination of a
// NetworkFacilityExtension.
type EntityType uint8

const (
	EntityEndPINX    EntityType = 0
	EntityAnyTypePINX EntityType = 1
)

// NetworkFacilityExtension is the [10] IMPLICIT SEQUENCE that names which
// PINX entities originated and are meant to receive a routed Facility
// component list.
type NetworkFacilityExtension struct {
	SourceEntity          EntityType
	SourceAddress         *PartyNumber
	DestinationEntity     EntityType
	DestinationAddress    *PartyNumber
}

const (
	tagNFESourceEntity      = 0
	tagNFESourceAddress     = 1
	tagNFEDestEntity        = 2
	tagNFEDestAddress       = 3
	tagFacilityNFE          = 10
	tagFacilityInterp       = 11
	tagFacilityNPP          = 18
)

func (n NetworkFacilityExtension) encode(w *ber.Writer) {
	w.Nested(ber.ContextTag(tagFacilityNFE, true), func(inner *ber.Writer) {
		inner.EncodeInt64(ber.ContextTag(tagNFESourceEntity, false), int64(n.SourceEntity))
		if n.SourceAddress != nil {
			inner.Nested(ber.ContextTag(tagNFESourceAddress, true), func(addr *ber.Writer) {
				n.SourceAddress.Encode(addr)
			})
		}
		inner.EncodeInt64(ber.ContextTag(tagNFEDestEntity, false), int64(n.DestinationEntity))
		if n.DestinationAddress != nil {
			inner.Nested(ber.ContextTag(tagNFEDestAddress, true), func(addr *ber.Writer) {
				n.DestinationAddress.Encode(addr)
			})
		}
	})
}

func decodeNetworkFacilityExtension(content *ber.Reader) (NetworkFacilityExtension, error) {
	n := NetworkFacilityExtension{}

	entID, entSub, err := content.ReadTagLength()
	if err != nil || !entID.ContextSpecific(tagNFESourceEntity) {
		return n, wrapDecode("NetworkFacilityExtension", "source-entity", ErrUnexpectedTag)
	}
	v, err := ber.DecodeInt64(entSub.Content())
	if err != nil {
		return n, wrapDecode("NetworkFacilityExtension", "source-entity", err)
	}
	n.SourceEntity = EntityType(v)

	if content.Remaining() {
		if id, err := content.PeekIdentifier(); err == nil && id.ContextSpecific(tagNFESourceAddress) {
			_, addrSub, err := content.ReadTagLength()
			if err != nil {
				return n, wrapDecode("NetworkFacilityExtension", "source-address", err)
			}
			number, err := DecodePartyNumber(addrSub)
			if err != nil {
				return n, err
			}
			n.SourceAddress = &number
		}
	}

	destID, destSub, err := content.ReadTagLength()
	if err != nil || !destID.ContextSpecific(tagNFEDestEntity) {
		return n, wrapDecode("NetworkFacilityExtension", "destination-entity", ErrUnexpectedTag)
	}
	v, err = ber.DecodeInt64(destSub.Content())
	if err != nil {
		return n, wrapDecode("NetworkFacilityExtension", "destination-entity", err)
	}
	n.DestinationEntity = EntityType(v)

	if content.Remaining() {
		if id, err := content.PeekIdentifier(); err == nil && id.ContextSpecific(tagNFEDestAddress) {
			_, addrSub, err := content.ReadTagLength()
			if err != nil {
				return n, wrapDecode("NetworkFacilityExtension", "destination-address", err)
			}
			number, err := DecodePartyNumber(addrSub)
			if err != nil {
				return n, err
			}
			n.DestinationAddress = &number
		}
	}
	return n, nil
}

// InterpretationAPDU governs how a receiver treats an unrecognized Invoke.
type InterpretationAPDU uint8

const (
	InterpretationDiscardUnrecognized InterpretationAPDU = 0
	InterpretationClearCallUnrecognized InterpretationAPDU = 1
	InterpretationRejectUnrecognized InterpretationAPDU = 2
)

// ExtensionHeader precedes the ROSE component list in a Facility IE:
// an optional NetworkFacilityExtension, an optional
// NetworkProtocolProfile (0..254), and an optional InterpretationAPDU.
// Absence of the interpretation component implies
// InterpretationRejectUnrecognized (spec.md §4.6 / ETS 300 196).
type ExtensionHeader struct {
	NFE            *NetworkFacilityExtension
	NPP            *uint8
	Interpretation *InterpretationAPDU
}

// Encode appends whichever of the three optional components are present,
// in NFE/NPP/interpretation order.
func (h ExtensionHeader) Encode(w *ber.Writer) {
	if h.NFE != nil {
		h.NFE.encode(w)
	}
	if h.NPP != nil {
		w.EncodeInt64(ber.ContextTag(tagFacilityNPP, false), int64(*h.NPP))
	}
	if h.Interpretation != nil {
		w.EncodeInt64(ber.ContextTag(tagFacilityInterp, false), int64(*h.Interpretation))
	}
}

// ProtocolDiscriminator is the fixed leading octet of a built facility
// frame, identifying the byte stream that follows as ROSE-in-Q.931 rather
// than some other Facility IE content (spec.md §4.6).
const ProtocolDiscriminator = 0x91

// EncodeFacility builds a complete Facility IE payload: the protocol
// discriminator byte, the extension header, then each component in msgs in
// order (spec.md §6's "one combined facility-frame builder").
func (c *Controller) EncodeFacility(w *ber.Writer, header ExtensionHeader, msgs []Message) error {
	w.WriteByte(ProtocolDiscriminator)
	header.Encode(w)
	for i := range msgs {
		if err := c.Encode(w, msgs[i]); err != nil {
			return err
		}
	}
	return nil
}

// DecodeFacility reads a complete Facility IE payload built by
// EncodeFacility: the discriminator byte, the extension header, then
// zero or more components consuming the rest of r.
func (c *Controller) DecodeFacility(r *ber.Reader) (ExtensionHeader, []Message, error) {
	b, err := r.ReadByte()
	if err != nil {
		return ExtensionHeader{}, nil, wrapDecode("Facility", "protocol-discriminator", err)
	}
	if b != ProtocolDiscriminator {
		return ExtensionHeader{}, nil, wrapDecode("Facility", "protocol-discriminator", ErrUnexpectedTag)
	}
	header, err := DecodeExtensionHeader(r)
	if err != nil {
		return ExtensionHeader{}, nil, err
	}
	var msgs []Message
	for r.Remaining() {
		msg, err := c.Decode(r)
		if err != nil {
			return ExtensionHeader{}, nil, err
		}
		msgs = append(msgs, msg)
	}
	return header, msgs, nil
}

// DecodeExtensionHeader reads as many of the three optional components as
// are present at r's cursor, stopping at the first tag that matches none
// of them (the start of the ROSE component list).
func DecodeExtensionHeader(r *ber.Reader) (ExtensionHeader, error) {
	h := ExtensionHeader{}
	for r.Remaining() {
		id, err := r.PeekIdentifier()
		if err != nil {
			return h, err
		}
		switch {
		case id.ContextSpecific(tagFacilityNFE) && h.NFE == nil:
			_, content, err := r.ReadTagLength()
			if err != nil {
				return h, wrapDecode("ExtensionHeader", "nfe", err)
			}
			nfe, err := decodeNetworkFacilityExtension(content)
			if err != nil {
				return h, err
			}
			h.NFE = &nfe
		case id.ContextSpecific(tagFacilityNPP) && h.NPP == nil:
			_, content, err := r.ReadTagLength()
			if err != nil {
				return h, wrapDecode("ExtensionHeader", "npp", err)
			}
			v, err := ber.DecodeInt64(content.Content())
			if err != nil || v < 0 || v > 254 {
				return h, wrapDecode("ExtensionHeader", "npp", ErrValueOutOfRange)
			}
			npp := uint8(v)
			h.NPP = &npp
		case id.ContextSpecific(tagFacilityInterp) && h.Interpretation == nil:
			_, content, err := r.ReadTagLength()
			if err != nil {
				return h, wrapDecode("ExtensionHeader", "interpretation", err)
			}
			v, err := ber.DecodeInt64(content.Content())
			if err != nil {
				return h, wrapDecode("ExtensionHeader", "interpretation", err)
			}
			interp := InterpretationAPDU(v)
			h.Interpretation = &interp
		default:
			return h, nil
		}
	}
	return h, nil
}
