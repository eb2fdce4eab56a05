// Package carquery provides a client for the CarQuery vehicle database API.
//
// # Overview
//
// CarQuery exposes five read-only commands over a single HTTP GET endpoint,
// selected by the cmd query parameter:
//
//   - getYears: the model year range ([Client.GetYearRange])
//   - getMakes: makes active in a year ([Client.GetMakes])
//   - getModels: models of a make in a year ([Client.GetModels])
//   - getTrims: filtered trim search ([Client.GetTrims])
//   - getModel: the full record of one trim ([Client.GetModelDetail])
//
// # Normalization
//
// The API serializes every number and flag as a string and uses snake_case
// keys. Responses are mapped field by field into camelCase structs:
//
//   - numeric strings become int or float64; null, missing or unparseable
//     values become 0
//   - "1"/"0" flags become bool; only "1" is true
//   - compression ratio and CO2 stay strings and keep null as nil
//
// # Filters
//
// [GetTrimsParams] sends only the filters that are set. A zero number, an
// empty string or a false flag is omitted from the request, so a filter
// value of 0 cannot be expressed.
//
// # Usage
//
//	client := carquery.NewClient(carquery.Options{})
//	trims, err := client.GetTrims(ctx, carquery.GetTrimsParams{
//	    Make:         "ford",
//	    Year:         2011,
//	    MinCylinders: 6,
//	})
//
// Attach a [cache.Cache] through [Options] to reuse responses across calls
// and processes.
package carquery
