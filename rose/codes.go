package rose

import "strconv"

// OperationCode identifies a ROSE operation across all four dialects. ETSI,
// DMS-100, and NI-2 operations are carried on the wire as a local INTEGER;
// Q.SIG operations are carried as a global OBJECT IDENTIFIER but are given
// the same small-integer representation here so dispatch tables, logging,
// and tests don't care which wire form produced the value.
type OperationCode int

// Sentinel operation codes outside the named table.
const (
	OperationNone    OperationCode = 0
	OperationUnknown OperationCode = -1
)

// Named operation codes, grouped by dialect in source enumeration order.
const (
	OperationEtsiActivationDiversion OperationCode = 1
	OperationEtsiDeactivationDiversion OperationCode = 2
	OperationEtsiActivationStatusNotificationDiv OperationCode = 3
	OperationEtsiDeactivationStatusNotificationDiv OperationCode = 4
	OperationEtsiInterrogationDiversion OperationCode = 5
	OperationEtsiDiversionInformation OperationCode = 6
	OperationEtsiCallDeflection OperationCode = 7
	OperationEtsiCallRerouting OperationCode = 8
	OperationEtsiInterrogateServedUserNumbers OperationCode = 9
	OperationEtsiDivertingLegInformation1 OperationCode = 10
	OperationEtsiDivertingLegInformation2 OperationCode = 11
	OperationEtsiDivertingLegInformation3 OperationCode = 12
	OperationEtsiChargingRequest OperationCode = 13
	OperationEtsiAOCSCurrency OperationCode = 14
	OperationEtsiAOCSSpecialArr OperationCode = 15
	OperationEtsiAOCDCurrency OperationCode = 16
	OperationEtsiAOCDChargingUnit OperationCode = 17
	OperationEtsiAOCECurrency OperationCode = 18
	OperationEtsiAOCEChargingUnit OperationCode = 19
	OperationEtsiEctExecute OperationCode = 20
	OperationEtsiExplicitEctExecute OperationCode = 21
	OperationEtsiRequestSubaddress OperationCode = 22
	OperationEtsiSubaddressTransfer OperationCode = 23
	OperationEtsiEctLinkIdRequest OperationCode = 24
	OperationEtsiEctInform OperationCode = 25
	OperationEtsiEctLoopTest OperationCode = 26
	OperationEtsiStatusRequest OperationCode = 27
	OperationEtsiCallInfoRetain OperationCode = 28
	OperationEtsiCCBSRequest OperationCode = 29
	OperationEtsiCCBSDeactivate OperationCode = 30
	OperationEtsiCCBSInterrogate OperationCode = 31
	OperationEtsiCCBSErase OperationCode = 32
	OperationEtsiCCBSRemoteUserFree OperationCode = 33
	OperationEtsiCCBSCall OperationCode = 34
	OperationEtsiCCBSStatusRequest OperationCode = 35
	OperationEtsiCCBSBFree OperationCode = 36
	OperationEtsiEraseCallLinkageID OperationCode = 37
	OperationEtsiCCBSStopAlerting OperationCode = 38
	OperationEtsiCCBSTRequest OperationCode = 39
	OperationEtsiCCBSTCall OperationCode = 40
	OperationEtsiCCBSTSuspend OperationCode = 41
	OperationEtsiCCBSTResume OperationCode = 42
	OperationEtsiCCBSTRemoteUserFree OperationCode = 43
	OperationEtsiCCBSTAvailable OperationCode = 44
	OperationEtsiCCNRRequest OperationCode = 45
	OperationEtsiCCNRInterrogate OperationCode = 46
	OperationEtsiCCNRTRequest OperationCode = 47
	OperationEtsiMCIDRequest OperationCode = 48
	OperationEtsiMWIActivate OperationCode = 49
	OperationEtsiMWIDeactivate OperationCode = 50
	OperationEtsiMWIIndicate OperationCode = 51
	OperationQsigCallingName OperationCode = 52
	OperationQsigCalledName OperationCode = 53
	OperationQsigConnectedName OperationCode = 54
	OperationQsigBusyName OperationCode = 55
	OperationQsigChargeRequest OperationCode = 56
	OperationQsigGetFinalCharge OperationCode = 57
	OperationQsigAocFinal OperationCode = 58
	OperationQsigAocInterim OperationCode = 59
	OperationQsigAocRate OperationCode = 60
	OperationQsigAocComplete OperationCode = 61
	OperationQsigAocDivChargeReq OperationCode = 62
	OperationQsigCallTransferIdentify OperationCode = 63
	OperationQsigCallTransferAbandon OperationCode = 64
	OperationQsigCallTransferInitiate OperationCode = 65
	OperationQsigCallTransferSetup OperationCode = 66
	OperationQsigCallTransferActive OperationCode = 67
	OperationQsigCallTransferComplete OperationCode = 68
	OperationQsigCallTransferUpdate OperationCode = 69
	OperationQsigSubaddressTransfer OperationCode = 70
	OperationQsigPathReplacement OperationCode = 71
	OperationQsigActivateDiversionQ OperationCode = 72
	OperationQsigDeactivateDiversionQ OperationCode = 73
	OperationQsigInterrogateDiversionQ OperationCode = 74
	OperationQsigCheckRestriction OperationCode = 75
	OperationQsigCallRerouting OperationCode = 76
	OperationQsigDivertingLegInformation1 OperationCode = 77
	OperationQsigDivertingLegInformation2 OperationCode = 78
	OperationQsigDivertingLegInformation3 OperationCode = 79
	OperationQsigCfnrDivertedLegFailed OperationCode = 80
	OperationQsigCcbsRequest OperationCode = 81
	OperationQsigCcnrRequest OperationCode = 82
	OperationQsigCcCancel OperationCode = 83
	OperationQsigCcExecPossible OperationCode = 84
	OperationQsigCcPathReserve OperationCode = 85
	OperationQsigCcRingout OperationCode = 86
	OperationQsigCcSuspend OperationCode = 87
	OperationQsigCcResume OperationCode = 88
	OperationQsigMWIActivate OperationCode = 89
	OperationQsigMWIDeactivate OperationCode = 90
	OperationQsigMWIInterrogate OperationCode = 91
	OperationDms100RLTOperationInd OperationCode = 92
	OperationDms100RLTThirdParty OperationCode = 93
	OperationNi2InformationFollowing OperationCode = 94
	OperationNi2InitiateTransfer OperationCode = 95
)

var operationNames = map[OperationCode]string{
	OperationNone: "none",
	OperationEtsiActivationDiversion: "etsi-activation-diversion",
	OperationEtsiDeactivationDiversion: "etsi-deactivation-diversion",
	OperationEtsiActivationStatusNotificationDiv: "etsi-activation-status-notification-div",
	OperationEtsiDeactivationStatusNotificationDiv: "etsi-deactivation-status-notification-div",
	OperationEtsiInterrogationDiversion: "etsi-interrogation-diversion",
	OperationEtsiDiversionInformation: "etsi-diversion-information",
	OperationEtsiCallDeflection: "etsi-call-deflection",
	OperationEtsiCallRerouting: "etsi-call-rerouting",
	OperationEtsiInterrogateServedUserNumbers: "etsi-interrogate-served-user-numbers",
	OperationEtsiDivertingLegInformation1: "etsi-diverting-leg-information1",
	OperationEtsiDivertingLegInformation2: "etsi-diverting-leg-information2",
	OperationEtsiDivertingLegInformation3: "etsi-diverting-leg-information3",
	OperationEtsiChargingRequest: "etsi-charging-request",
	OperationEtsiAOCSCurrency: "etsi-aocs-currency",
	OperationEtsiAOCSSpecialArr: "etsi-aocs-special-arr",
	OperationEtsiAOCDCurrency: "etsi-aocd-currency",
	OperationEtsiAOCDChargingUnit: "etsi-aocd-charging-unit",
	OperationEtsiAOCECurrency: "etsi-aoce-currency",
	OperationEtsiAOCEChargingUnit: "etsi-aoce-charging-unit",
	OperationEtsiEctExecute: "etsi-ect-execute",
	OperationEtsiExplicitEctExecute: "etsi-explicit-ect-execute",
	OperationEtsiRequestSubaddress: "etsi-request-subaddress",
	OperationEtsiSubaddressTransfer: "etsi-subaddress-transfer",
	OperationEtsiEctLinkIdRequest: "etsi-ect-link-id-request",
	OperationEtsiEctInform: "etsi-ect-inform",
	OperationEtsiEctLoopTest: "etsi-ect-loop-test",
	OperationEtsiStatusRequest: "etsi-status-request",
	OperationEtsiCallInfoRetain: "etsi-call-info-retain",
	OperationEtsiCCBSRequest: "etsi-ccbs-request",
	OperationEtsiCCBSDeactivate: "etsi-ccbs-deactivate",
	OperationEtsiCCBSInterrogate: "etsi-ccbs-interrogate",
	OperationEtsiCCBSErase: "etsi-ccbs-erase",
	OperationEtsiCCBSRemoteUserFree: "etsi-ccbs-remote-user-free",
	OperationEtsiCCBSCall: "etsi-ccbs-call",
	OperationEtsiCCBSStatusRequest: "etsi-ccbs-status-request",
	OperationEtsiCCBSBFree: "etsi-ccbsb-free",
	OperationEtsiEraseCallLinkageID: "etsi-erase-call-linkage-id",
	OperationEtsiCCBSStopAlerting: "etsi-ccbs-stop-alerting",
	OperationEtsiCCBSTRequest: "etsi-ccbst-request",
	OperationEtsiCCBSTCall: "etsi-ccbst-call",
	OperationEtsiCCBSTSuspend: "etsi-ccbst-suspend",
	OperationEtsiCCBSTResume: "etsi-ccbst-resume",
	OperationEtsiCCBSTRemoteUserFree: "etsi-ccbst-remote-user-free",
	OperationEtsiCCBSTAvailable: "etsi-ccbst-available",
	OperationEtsiCCNRRequest: "etsi-ccnr-request",
	OperationEtsiCCNRInterrogate: "etsi-ccnr-interrogate",
	OperationEtsiCCNRTRequest: "etsi-ccnrt-request",
	OperationEtsiMCIDRequest: "etsi-mcid-request",
	OperationEtsiMWIActivate: "etsi-mwi-activate",
	OperationEtsiMWIDeactivate: "etsi-mwi-deactivate",
	OperationEtsiMWIIndicate: "etsi-mwi-indicate",
	OperationQsigCallingName: "qsig-calling-name",
	OperationQsigCalledName: "qsig-called-name",
	OperationQsigConnectedName: "qsig-connected-name",
	OperationQsigBusyName: "qsig-busy-name",
	OperationQsigChargeRequest: "qsig-charge-request",
	OperationQsigGetFinalCharge: "qsig-get-final-charge",
	OperationQsigAocFinal: "qsig-aoc-final",
	OperationQsigAocInterim: "qsig-aoc-interim",
	OperationQsigAocRate: "qsig-aoc-rate",
	OperationQsigAocComplete: "qsig-aoc-complete",
	OperationQsigAocDivChargeReq: "qsig-aoc-div-charge-req",
	OperationQsigCallTransferIdentify: "qsig-call-transfer-identify",
	OperationQsigCallTransferAbandon: "qsig-call-transfer-abandon",
	OperationQsigCallTransferInitiate: "qsig-call-transfer-initiate",
	OperationQsigCallTransferSetup: "qsig-call-transfer-setup",
	OperationQsigCallTransferActive: "qsig-call-transfer-active",
	OperationQsigCallTransferComplete: "qsig-call-transfer-complete",
	OperationQsigCallTransferUpdate: "qsig-call-transfer-update",
	OperationQsigSubaddressTransfer: "qsig-subaddress-transfer",
	OperationQsigPathReplacement: "qsig-path-replacement",
	OperationQsigActivateDiversionQ: "qsig-activate-diversion-q",
	OperationQsigDeactivateDiversionQ: "qsig-deactivate-diversion-q",
	OperationQsigInterrogateDiversionQ: "qsig-interrogate-diversion-q",
	OperationQsigCheckRestriction: "qsig-check-restriction",
	OperationQsigCallRerouting: "qsig-call-rerouting",
	OperationQsigDivertingLegInformation1: "qsig-diverting-leg-information1",
	OperationQsigDivertingLegInformation2: "qsig-diverting-leg-information2",
	OperationQsigDivertingLegInformation3: "qsig-diverting-leg-information3",
	OperationQsigCfnrDivertedLegFailed: "qsig-cfnr-diverted-leg-failed",
	OperationQsigCcbsRequest: "qsig-ccbs-request",
	OperationQsigCcnrRequest: "qsig-ccnr-request",
	OperationQsigCcCancel: "qsig-cc-cancel",
	OperationQsigCcExecPossible: "qsig-cc-exec-possible",
	OperationQsigCcPathReserve: "qsig-cc-path-reserve",
	OperationQsigCcRingout: "qsig-cc-ringout",
	OperationQsigCcSuspend: "qsig-cc-suspend",
	OperationQsigCcResume: "qsig-cc-resume",
	OperationQsigMWIActivate: "qsig-mwi-activate",
	OperationQsigMWIDeactivate: "qsig-mwi-deactivate",
	OperationQsigMWIInterrogate: "qsig-mwi-interrogate",
	OperationDms100RLTOperationInd: "dms100-rlt-operation-ind",
	OperationDms100RLTThirdParty: "dms100-rlt-third-party",
	OperationNi2InformationFollowing: "ni2-information-following",
	OperationNi2InitiateTransfer: "ni2-initiate-transfer",
}

// String renders the operation's stable label, matching the "invalid code"
// fallback used throughout the signaling stack's diagnostics.
func (c OperationCode) String() string {
	if name, ok := operationNames[c]; ok {
		return name
	}
	return invalidCodeLabel(int(c))
}

// ErrorCode identifies a ROSE return-error value across all four dialects.
type ErrorCode int

// Sentinel error codes outside the named table.
const (
	ErrorNone    ErrorCode = 0
	ErrorUnknown ErrorCode = -1
)

// Named error codes, grouped by dialect/family in source enumeration order.
const (
	ErrorGenNotSubscribed ErrorCode = 1
	ErrorGenNotAvailable ErrorCode = 2
	ErrorGenNotImplemented ErrorCode = 3
	ErrorGenInvalidServedUserNr ErrorCode = 4
	ErrorGenInvalidCallState ErrorCode = 5
	ErrorGenBasicServiceNotProvided ErrorCode = 6
	ErrorGenNotIncomingCall ErrorCode = 7
	ErrorGenSupplementaryServiceInteractionNotAllowed ErrorCode = 8
	ErrorGenResourceUnavailable ErrorCode = 9
	ErrorGenRejectedByNetwork ErrorCode = 10
	ErrorGenRejectedByUser ErrorCode = 11
	ErrorGenInsufficientInformation ErrorCode = 12
	ErrorGenCallFailure ErrorCode = 13
	ErrorGenProceduralError ErrorCode = 14
	ErrorDivInvalidDivertedToNr ErrorCode = 15
	ErrorDivSpecialServiceNr ErrorCode = 16
	ErrorDivDiversionToServedUserNr ErrorCode = 17
	ErrorDivIncomingCallAccepted ErrorCode = 18
	ErrorDivNumberOfDiversionsExceeded ErrorCode = 19
	ErrorDivNotActivated ErrorCode = 20
	ErrorDivRequestAlreadyAccepted ErrorCode = 21
	ErrorAOCNoChargingInfoAvailable ErrorCode = 22
	ErrorECTLinkIdNotAssignedByNetwork ErrorCode = 23
	ErrorCCBSInvalidCallLinkageID ErrorCode = 24
	ErrorCCBSInvalidCCBSReference ErrorCode = 25
	ErrorCCBSLongTermDenial ErrorCode = 26
	ErrorCCBSShortTermDenial ErrorCode = 27
	ErrorCCBSIsAlreadyActivated ErrorCode = 28
	ErrorCCBSAlreadyAccepted ErrorCode = 29
	ErrorCCBSOutgoingCCBSQueueFull ErrorCode = 30
	ErrorCCBSCallFailureReasonNotBusy ErrorCode = 31
	ErrorCCBSNotReadyForCall ErrorCode = 32
	ErrorCCBSTLongTermDenial ErrorCode = 33
	ErrorCCBSTShortTermDenial ErrorCode = 34
	ErrorMWIInvalidReceivingUserNr ErrorCode = 35
	ErrorMWIReceivingUserNotSubscribed ErrorCode = 36
	ErrorMWIControllingUserNotRegistered ErrorCode = 37
	ErrorMWIIndicationNotDelivered ErrorCode = 38
	ErrorMWIMaxNumOfControllingUsersReached ErrorCode = 39
	ErrorMWIMaxNumOfActiveInstancesReached ErrorCode = 40
	ErrorQsigUnspecified ErrorCode = 41
	ErrorQsigAOCFreeOfCharge ErrorCode = 42
	ErrorQsigCTInvalidReroutingNumber ErrorCode = 43
	ErrorQsigCTUnrecognizedCallIdentity ErrorCode = 44
	ErrorQsigCTEstablishmentFailure ErrorCode = 45
	ErrorQsigDivTemporarilyUnavailable ErrorCode = 46
	ErrorQsigDivNotAuthorized ErrorCode = 47
	ErrorQsigShortTermRejection ErrorCode = 48
	ErrorQsigLongTermRejection ErrorCode = 49
	ErrorQsigRemoteUserBusyAgain ErrorCode = 50
	ErrorQsigFailureToMatch ErrorCode = 51
	ErrorQsigFailedDueToInterworking ErrorCode = 52
	ErrorQsigInvalidMsgCentreId ErrorCode = 53
	ErrorDms100RLTBridgeFail ErrorCode = 54
	ErrorDms100RLTCallIDNotFound ErrorCode = 55
	ErrorDms100RLTNotAllowed ErrorCode = 56
	ErrorDms100RLTSwitchEquipCongs ErrorCode = 57
)

var errorNames = map[ErrorCode]string{
	ErrorNone: "none",
	ErrorGenNotSubscribed: "gen-not-subscribed",
	ErrorGenNotAvailable: "gen-not-available",
	ErrorGenNotImplemented: "gen-not-implemented",
	ErrorGenInvalidServedUserNr: "gen-invalid-served-user-nr",
	ErrorGenInvalidCallState: "gen-invalid-call-state",
	ErrorGenBasicServiceNotProvided: "gen-basic-service-not-provided",
	ErrorGenNotIncomingCall: "gen-not-incoming-call",
	ErrorGenSupplementaryServiceInteractionNotAllowed: "gen-supplementary-service-interaction-not-allowed",
	ErrorGenResourceUnavailable: "gen-resource-unavailable",
	ErrorGenRejectedByNetwork: "gen-rejected-by-network",
	ErrorGenRejectedByUser: "gen-rejected-by-user",
	ErrorGenInsufficientInformation: "gen-insufficient-information",
	ErrorGenCallFailure: "gen-call-failure",
	ErrorGenProceduralError: "gen-procedural-error",
	ErrorDivInvalidDivertedToNr: "div-invalid-diverted-to-nr",
	ErrorDivSpecialServiceNr: "div-special-service-nr",
	ErrorDivDiversionToServedUserNr: "div-diversion-to-served-user-nr",
	ErrorDivIncomingCallAccepted: "div-incoming-call-accepted",
	ErrorDivNumberOfDiversionsExceeded: "div-number-of-diversions-exceeded",
	ErrorDivNotActivated: "div-not-activated",
	ErrorDivRequestAlreadyAccepted: "div-request-already-accepted",
	ErrorAOCNoChargingInfoAvailable: "aoc-no-charging-info-available",
	ErrorECTLinkIdNotAssignedByNetwork: "ect-link-id-not-assigned-by-network",
	ErrorCCBSInvalidCallLinkageID: "ccbs-invalid-call-linkage-id",
	ErrorCCBSInvalidCCBSReference: "ccbs-invalid-ccbs-reference",
	ErrorCCBSLongTermDenial: "ccbs-long-term-denial",
	ErrorCCBSShortTermDenial: "ccbs-short-term-denial",
	ErrorCCBSIsAlreadyActivated: "ccbs-is-already-activated",
	ErrorCCBSAlreadyAccepted: "ccbs-already-accepted",
	ErrorCCBSOutgoingCCBSQueueFull: "ccbs-outgoing-ccbs-queue-full",
	ErrorCCBSCallFailureReasonNotBusy: "ccbs-call-failure-reason-not-busy",
	ErrorCCBSNotReadyForCall: "ccbs-not-ready-for-call",
	ErrorCCBSTLongTermDenial: "ccbst-long-term-denial",
	ErrorCCBSTShortTermDenial: "ccbst-short-term-denial",
	ErrorMWIInvalidReceivingUserNr: "mwi-invalid-receiving-user-nr",
	ErrorMWIReceivingUserNotSubscribed: "mwi-receiving-user-not-subscribed",
	ErrorMWIControllingUserNotRegistered: "mwi-controlling-user-not-registered",
	ErrorMWIIndicationNotDelivered: "mwi-indication-not-delivered",
	ErrorMWIMaxNumOfControllingUsersReached: "mwi-max-num-of-controlling-users-reached",
	ErrorMWIMaxNumOfActiveInstancesReached: "mwi-max-num-of-active-instances-reached",
	ErrorQsigUnspecified: "qsig-unspecified",
	ErrorQsigAOCFreeOfCharge: "qsig-aoc-free-of-charge",
	ErrorQsigCTInvalidReroutingNumber: "qsig-ct-invalid-rerouting-number",
	ErrorQsigCTUnrecognizedCallIdentity: "qsig-ct-unrecognized-call-identity",
	ErrorQsigCTEstablishmentFailure: "qsig-ct-establishment-failure",
	ErrorQsigDivTemporarilyUnavailable: "qsig-div-temporarily-unavailable",
	ErrorQsigDivNotAuthorized: "qsig-div-not-authorized",
	ErrorQsigShortTermRejection: "qsig-short-term-rejection",
	ErrorQsigLongTermRejection: "qsig-long-term-rejection",
	ErrorQsigRemoteUserBusyAgain: "qsig-remote-user-busy-again",
	ErrorQsigFailureToMatch: "qsig-failure-to-match",
	ErrorQsigFailedDueToInterworking: "qsig-failed-due-to-interworking",
	ErrorQsigInvalidMsgCentreId: "qsig-invalid-msg-centre-id",
	ErrorDms100RLTBridgeFail: "dms100-rlt-bridge-fail",
	ErrorDms100RLTCallIDNotFound: "dms100-rlt-call-id-not-found",
	ErrorDms100RLTNotAllowed: "dms100-rlt-not-allowed",
	ErrorDms100RLTSwitchEquipCongs: "dms100-rlt-switch-equip-congs",
}

// String renders the error's stable label.
func (c ErrorCode) String() string {
	if name, ok := errorNames[c]; ok {
		return name
	}
	return invalidCodeLabel(int(c))
}

// RejectBase identifies which APDU class a Reject problem pertains to: the
// component in general, or specifically an Invoke, ReturnResult, or
// ReturnError. On the wire the base is the context tag number of the
// problem field; RejectCode.Numeric folds it into a compact code as
// base*0x100 + offset.
type RejectBase int

const (
	RejectBaseGeneral RejectBase = 0
	RejectBaseInvoke  RejectBase = 1
	RejectBaseResult  RejectBase = 2
	RejectBaseError   RejectBase = 3
)

func (b RejectBase) String() string {
	switch b {
	case RejectBaseGeneral:
		return "general"
	case RejectBaseInvoke:
		return "invoke"
	case RejectBaseResult:
		return "result"
	case RejectBaseError:
		return "error"
	default:
		return invalidCodeLabel(int(b))
	}
}

// RejectCode identifies a specific Reject problem. On the wire Base is the
// problem field's context tag number and Offset its INTEGER value; Numeric
// gives the compact code base*0x100 + offset. Named constants below are
// the complete problem catalogue.
type RejectCode struct {
	Base   RejectBase
	Offset uint8
}

// Numeric returns the compact integer code (base*0x100 + offset) for a
// RejectCode.
func (r RejectCode) Numeric() int {
	return int(r.Base)*0x100 + int(r.Offset)
}

// RejectCodeFromNumeric splits a compact Reject problem code (as returned
// by Numeric) back into its (base, offset) components.
func RejectCodeFromNumeric(n int) RejectCode {
	return RejectCode{Base: RejectBase(n / 0x100), Offset: uint8(n % 0x100)}
}

// Named Reject problem codes.
var (
	RejectGenUnrecognizedComponent = RejectCode{Base: RejectBaseGeneral, Offset: 0}
	RejectGenMistypedComponent = RejectCode{Base: RejectBaseGeneral, Offset: 1}
	RejectGenBadlyStructuredComponent = RejectCode{Base: RejectBaseGeneral, Offset: 2}
	RejectInvDuplicateInvocation = RejectCode{Base: RejectBaseInvoke, Offset: 0}
	RejectInvUnrecognizedOperation = RejectCode{Base: RejectBaseInvoke, Offset: 1}
	RejectInvMistypedArgument = RejectCode{Base: RejectBaseInvoke, Offset: 2}
	RejectInvResourceLimitation = RejectCode{Base: RejectBaseInvoke, Offset: 3}
	RejectInvInitiatorReleasing = RejectCode{Base: RejectBaseInvoke, Offset: 4}
	RejectInvUnrecognizedLinkedID = RejectCode{Base: RejectBaseInvoke, Offset: 5}
	RejectInvLinkedResponseUnexpected = RejectCode{Base: RejectBaseInvoke, Offset: 6}
	RejectInvUnexpectedChildOperation = RejectCode{Base: RejectBaseInvoke, Offset: 7}
	RejectResUnrecognizedInvocation = RejectCode{Base: RejectBaseResult, Offset: 0}
	RejectResResultResponseUnexpected = RejectCode{Base: RejectBaseResult, Offset: 1}
	RejectResMistypedResult = RejectCode{Base: RejectBaseResult, Offset: 2}
	RejectErrUnrecognizedInvocation = RejectCode{Base: RejectBaseError, Offset: 0}
	RejectErrErrorResponseUnexpected = RejectCode{Base: RejectBaseError, Offset: 1}
	RejectErrUnrecognizedError = RejectCode{Base: RejectBaseError, Offset: 2}
	RejectErrUnexpectedError = RejectCode{Base: RejectBaseError, Offset: 3}
	RejectErrMistypedParameter = RejectCode{Base: RejectBaseError, Offset: 4}
)

var rejectNames = map[RejectCode]string{
	RejectGenUnrecognizedComponent: "general-unrecognized-component",
	RejectGenMistypedComponent: "general-mistyped-component",
	RejectGenBadlyStructuredComponent: "general-badly-structured-component",
	RejectInvDuplicateInvocation: "invoke-duplicate-invocation",
	RejectInvUnrecognizedOperation: "invoke-unrecognized-operation",
	RejectInvMistypedArgument: "invoke-mistyped-argument",
	RejectInvResourceLimitation: "invoke-resource-limitation",
	RejectInvInitiatorReleasing: "invoke-initiator-releasing",
	RejectInvUnrecognizedLinkedID: "invoke-unrecognized-linked-id",
	RejectInvLinkedResponseUnexpected: "invoke-linked-response-unexpected",
	RejectInvUnexpectedChildOperation: "invoke-unexpected-child-operation",
	RejectResUnrecognizedInvocation: "result-unrecognized-invocation",
	RejectResResultResponseUnexpected: "result-result-response-unexpected",
	RejectResMistypedResult: "result-mistyped-result",
	RejectErrUnrecognizedInvocation: "error-unrecognized-invocation",
	RejectErrErrorResponseUnexpected: "error-error-response-unexpected",
	RejectErrUnrecognizedError: "error-unrecognized-error",
	RejectErrUnexpectedError: "error-unexpected-error",
	RejectErrMistypedParameter: "error-mistyped-parameter",
}

// String renders the Reject problem's stable label.
func (r RejectCode) String() string {
	if name, ok := rejectNames[r]; ok {
		return name
	}
	return invalidCodeLabel(r.Numeric())
}

func invalidCodeLabel(n int) string {
	return "invalid code: " + strconv.Itoa(n)
}
