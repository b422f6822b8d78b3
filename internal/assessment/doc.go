// Package assessment scores an AI-maturity self-assessment and picks the
// recommendations shown to the visitor.
//
// Every function here is pure and constant-time in the number of answers.
package assessment
