// Package commands defines the typed EPP command bodies and their response
// payloads for the standard object mappings (RFC 5730-5733): session
// management, domains, hosts, and contacts. Each command implements
// protocol.Command and is handed to client.Transact together with its
// response payload type.
//
// Request structs carry prefixed element tags (domain:name, host:addr, ...)
// because the registry requires namespace-qualified object elements;
// response payload structs use bare local names, which encoding/xml matches
// regardless of the prefix the registry chose.
package commands

// Object mapping namespaces.
const (
	DomainNamespace  = "urn:ietf:params:xml:ns:domain-1.0"
	HostNamespace    = "urn:ietf:params:xml:ns:host-1.0"
	ContactNamespace = "urn:ietf:params:xml:ns:contact-1.0"
)

// DefaultObjURIs is the service list declared at login when the caller does
// not narrow it.
var DefaultObjURIs = []string{DomainNamespace, ContactNamespace, HostNamespace}

// ObjectStatus is a status element as it appears in info responses.
type ObjectStatus struct {
	Status string `xml:"s,attr"`
	Reason string `xml:",chardata"`
}
