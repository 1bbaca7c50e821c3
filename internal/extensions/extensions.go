// Package extensions defines registry-specific command extensions that ride
// in the <extension> slot of a standard command: RGP restore, Verisign
// NameStore routing, and Consolidate expiry sync. Each implements
// protocol.Extension; response-side payloads are separate structs with bare
// local-name tags.
package extensions

// Extension namespaces.
const (
	RgpNamespace         = "urn:ietf:params:xml:ns:rgp-1.0"
	NameStoreNamespace   = "http://www.verisign-grs.com/epp/namestoreExt-1.1"
	ConsolidateNamespace = "http://www.verisign.com/epp/sync-1.0"
)
