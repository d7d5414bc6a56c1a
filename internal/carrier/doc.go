// Package carrier holds the UPS wire model: the rate and address validation
// payloads sent to a CarrierEndpoint and the responses it returns.
//
// Field names follow the carrier's JSON schema. Response types tolerate the
// carrier's loose shapes (a single object where a list is expected, numbers
// where strings are expected) so that nothing above the normalizer has to.
package carrier
