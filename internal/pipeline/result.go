package pipeline

// Status classifies a Result as a usable extraction or a failed one.
type Status string

const (
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// Result is the immutable outcome of extracting one URL. On success the text
// is non-empty and the method names the stage that produced it; on error only
// ID, URL, Status, and ErrorMessage are set.
type Result struct {
	ID               string
	URL              string
	ExtractedText    string
	PublicationDate  string
	ExtractionMethod string
	Status           Status
	ErrorMessage     string
}

func errorResult(id, url, msg string) Result {
	return Result{ID: id, URL: url, Status: StatusError, ErrorMessage: msg}
}
