// Package sdk provides a typed Go client for the ClauseGuard contract
// analysis API.
//
// Example:
//
//	client := sdk.NewClient("http://localhost:8000")
//	contracts, err := client.ListContracts(ctx)
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, c := range contracts {
//		fmt.Println(c.Filename, c.NumClauses)
//	}
//
// The client issues no retries: every failure surfaces exactly once to
// the caller, as an *APIError for non-2xx responses or a transport error
// otherwise.
package sdk
