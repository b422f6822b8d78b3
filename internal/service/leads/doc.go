// Package leads implements the lead-capture service behind the website forms.
//
// Each method takes an input the validation package has already normalized,
// runs the scoring engine for its endpoint, assembles a write-once record
// with a fresh id and timestamp, and appends it to the store inside one
// scoped session. It never imports net/http.
package leads
