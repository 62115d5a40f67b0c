// Package lucid is a thin HTTP client for the Lucid REST API.
//
// The client's single job is handing a serialized standard-import
// document to the API and reporting the identifier the service assigns.
// Document construction and validation happen in pkg/document; retry,
// authentication, and status mapping happen here.
//
//	client, err := lucid.NewClient(apiKey)
//	if err != nil {
//	    return err
//	}
//	result, err := client.CreateDocument(ctx, lucid.CreateDocumentRequest{
//	    Title:    "Release Flow",
//	    Document: doc,
//	})
//
// Transient failures (network errors, 5xx responses) are retried with
// exponential backoff; 429 responses surface as
// [errors.RateLimitedError]. API keys come from the LUCID_API_KEY
// environment variable or a config.toml file, see [LoadAPIKey].
package lucid
