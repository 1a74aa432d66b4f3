// Package actiontype derives related action type names from a single base
// name and builds the whitelists that reducers match against.
//
// One logical asynchronous operation is represented by three action types:
//
//	FETCH_USER          base type, dispatched when the request starts
//	FETCH_USER_ERROR    dispatched when the request fails
//	FETCH_USER_SUCCESS  dispatched when the request succeeds
//
// # Classification
//
// IsBase, IsError and IsSuccess use substring matching, not suffix matching.
// A base name that itself contains ERROR or SUCCESS (for example
// MINOR_ERROR_REPORT) is classified as a variant. Existing callers depend on
// this, so keep base names free of those words.
//
// # Whitelists
//
// A Set holds every action type a reducer reacts to:
//
//	types := actiontype.New("FETCH_USER", "SAVE_USER")
//	types.Has("SAVE_USER_ERROR") // true
//
// Parse builds the same Set from dynamically typed input such as a decoded
// JSON or YAML value, and rejects anything that is not a list of strings.
package actiontype
