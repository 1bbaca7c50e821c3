package protocol

import (
	"encoding/xml"
	"fmt"
	"strconv"
)

// ResultCode is the closed set of EPP result codes from RFC 5730 section 3.
// Codes below 2000 denote success; codes 2000 and above denote failure. This
// split is the engine's only success/failure oracle.
type ResultCode uint16

const (
	CommandCompleted              ResultCode = 1000
	CommandCompletedActionPending ResultCode = 1001
	CommandCompletedNoMessages    ResultCode = 1300
	CommandCompletedAckToDequeue  ResultCode = 1301
	CommandCompletedEndingSession ResultCode = 1500

	UnknownCommand                      ResultCode = 2000
	CommandSyntaxError                  ResultCode = 2001
	CommandUseError                     ResultCode = 2002
	RequiredParameterMissing            ResultCode = 2003
	ParameterValueRangeError            ResultCode = 2004
	ParameterValueSyntaxError           ResultCode = 2005
	UnimplementedProtocolVersion        ResultCode = 2100
	UnimplementedCommand                ResultCode = 2101
	UnimplementedOption                 ResultCode = 2102
	UnimplementedExtension              ResultCode = 2103
	BillingFailure                      ResultCode = 2104
	ObjectNotEligibleForRenewal         ResultCode = 2105
	ObjectNotEligibleForTransfer        ResultCode = 2106
	AuthenticationError                 ResultCode = 2200
	AuthorizationError                  ResultCode = 2201
	InvalidAuthorizationInfo            ResultCode = 2202
	ObjectPendingTransfer               ResultCode = 2300
	ObjectNotPendingTransfer            ResultCode = 2301
	ObjectExists                        ResultCode = 2302
	ObjectDoesNotExist                  ResultCode = 2303
	ObjectStatusProhibitsOperation      ResultCode = 2304
	ObjectAssociationProhibitsOperation ResultCode = 2305
	ParameterValuePolicyError           ResultCode = 2306
	UnimplementedObjectService          ResultCode = 2307
	DataManagementPolicyViolation       ResultCode = 2308
	CommandFailed                       ResultCode = 2400
	CommandFailedClosing                ResultCode = 2500
	AuthenticationErrorClosing          ResultCode = 2501
	SessionLimitExceededClosing         ResultCode = 2502
)

var resultCodeNames = map[ResultCode]string{
	CommandCompleted:                    "command completed successfully",
	CommandCompletedActionPending:       "command completed successfully; action pending",
	CommandCompletedNoMessages:          "command completed successfully; no messages",
	CommandCompletedAckToDequeue:        "command completed successfully; ack to dequeue",
	CommandCompletedEndingSession:       "command completed successfully; ending session",
	UnknownCommand:                      "unknown command",
	CommandSyntaxError:                  "command syntax error",
	CommandUseError:                     "command use error",
	RequiredParameterMissing:            "required parameter missing",
	ParameterValueRangeError:            "parameter value range error",
	ParameterValueSyntaxError:           "parameter value syntax error",
	UnimplementedProtocolVersion:        "unimplemented protocol version",
	UnimplementedCommand:                "unimplemented command",
	UnimplementedOption:                 "unimplemented option",
	UnimplementedExtension:              "unimplemented extension",
	BillingFailure:                      "billing failure",
	ObjectNotEligibleForRenewal:         "object is not eligible for renewal",
	ObjectNotEligibleForTransfer:        "object is not eligible for transfer",
	AuthenticationError:                 "authentication error",
	AuthorizationError:                  "authorization error",
	InvalidAuthorizationInfo:            "invalid authorization information",
	ObjectPendingTransfer:               "object pending transfer",
	ObjectNotPendingTransfer:            "object not pending transfer",
	ObjectExists:                        "object exists",
	ObjectDoesNotExist:                  "object does not exist",
	ObjectStatusProhibitsOperation:      "object status prohibits operation",
	ObjectAssociationProhibitsOperation: "object association prohibits operation",
	ParameterValuePolicyError:           "parameter value policy error",
	UnimplementedObjectService:          "unimplemented object service",
	DataManagementPolicyViolation:       "data management policy violation",
	CommandFailed:                       "command failed",
	CommandFailedClosing:                "command failed; server closing connection",
	AuthenticationErrorClosing:          "authentication error; server closing connection",
	SessionLimitExceededClosing:         "session limit exceeded; server closing connection",
}

// IsSuccess reports whether the code denotes success, including the
// action-pending and no-messages variants.
func (c ResultCode) IsSuccess() bool { return c < 2000 }

// Known reports whether the code is part of the RFC 5730 enumeration.
func (c ResultCode) Known() bool {
	_, ok := resultCodeNames[c]
	return ok
}

// String returns the RFC 5730 description of the code.
func (c ResultCode) String() string {
	if name, ok := resultCodeNames[c]; ok {
		return name
	}
	return fmt.Sprintf("unknown result code %d", uint16(c))
}

// UnmarshalXMLAttr decodes the code="NNNN" attribute of a <result> element.
// A code outside the RFC 5730 enumeration is a decode error, never silently
// mapped to success or failure.
func (c *ResultCode) UnmarshalXMLAttr(attr xml.Attr) error {
	n, err := strconv.ParseUint(attr.Value, 10, 16)
	if err != nil {
		return fmt.Errorf("result code %q is not numeric: %w", attr.Value, err)
	}
	code := ResultCode(n)
	if !code.Known() {
		return fmt.Errorf("result code %d is not an RFC 5730 code", n)
	}
	*c = code
	return nil
}

// MarshalXMLAttr renders the code back to its numeric form.
func (c ResultCode) MarshalXMLAttr(name xml.Name) (xml.Attr, error) {
	return xml.Attr{Name: name, Value: strconv.FormatUint(uint64(c), 10)}, nil
}
