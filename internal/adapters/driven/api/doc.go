// Package api implements the LawAfrica Digital Hub REST surface on top
// of the request gateway. Every method builds a request descriptor and
// hands it to the gateway; nothing here talks to the network directly.
//
// The backend owns all business rules. These methods are deliberately
// thin: marshal, call, unmarshal.
package api
