// Package ensemblrest is a client for the Ensembl REST API.
//
// Every endpoint of the embedded registry (see package registry) is exposed
// both through the generic Client.Call and as a named method generated from
// the registry:
//
//	client, err := ensemblrest.New()
//	if err != nil {
//		return err
//	}
//	gene, err := client.GetLookupByID(ctx, ensemblrest.Params{"id": "ENSG00000157764", "expand": true})
//
// Placeholders of an endpoint's URL template ("/lookup/id/{{id}}") are
// mandatory; a call missing one fails before any request is sent. Remaining
// params travel as the query string of GET requests or as the JSON body of
// POST requests.
//
// The client counts requests and, after DefaultRequestsPerSecond of them,
// pauses until one second has passed since the counter was last reset. Error
// responses are returned as *APIError values whose Kind distinguishes
// rate limiting (HTTP 429) and transport failures from other errors.
//
// NewGenome builds the same client against the Ensembl Genomes service.
package ensemblrest

//go:generate go run ./cmd/ensemblrest-opgen -o operations_gen.go
