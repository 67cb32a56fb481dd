// Package onboarding holds the client side of the Sem Errar questionnaire:
// the local key/value store answers are written to, the ordered wizard
// screens, unit conversions and the body metrics derived from the answers.
//
// Answers are stored as plain strings under fixed keys. Weight is always
// persisted in kilograms and lengths in centimetres; the unit the user typed
// is kept alongside so screens can show the previous answer the way it was
// entered.
package onboarding
