package commands

import "encoding/xml"

// Login establishes the authenticated session. The registry answers with a
// bare result; there is no <resData>.
type Login struct {
	XMLName     xml.Name      `xml:"login"`
	ClID        string        `xml:"clID"`
	Password    string        `xml:"pw"`
	NewPassword string        `xml:"newPW,omitempty"`
	Options     LoginOptions  `xml:"options"`
	Services    LoginServices `xml:"svcs"`
}

// LoginOptions fixes the protocol version and response language.
type LoginOptions struct {
	Version string `xml:"version"`
	Lang    string `xml:"lang"`
}

// LoginServices declares the object (and optional extension) namespaces the
// session intends to use. The svcExtension element requires at least one
// extURI, so it is a pointer and stays absent when no extensions are
// declared.
type LoginServices struct {
	Objects   []string           `xml:"objURI"`
	Extension *LoginSvcExtension `xml:"svcExtension"`
}

// LoginSvcExtension lists the extension namespaces inside <svcExtension>.
type LoginSvcExtension struct {
	Extensions []string `xml:"extURI"`
}

// NewLogin builds a login for the standard object mappings plus any
// extension namespaces the caller wants declared.
func NewLogin(username, password string, extensions []string) *Login {
	login := &Login{
		ClID:     username,
		Password: password,
		Options:  LoginOptions{Version: "1.0", Lang: "en"},
		Services: LoginServices{
			Objects: append([]string(nil), DefaultObjURIs...),
		},
	}
	if len(extensions) > 0 {
		login.Services.Extension = &LoginSvcExtension{Extensions: extensions}
	}
	return login
}

func (*Login) Action() string { return "login" }

// Logout ends the session; the registry closes the connection after
// answering with code 1500.
type Logout struct {
	XMLName xml.Name `xml:"logout"`
}

func NewLogout() *Logout { return &Logout{} }

func (*Logout) Action() string { return "logout" }
