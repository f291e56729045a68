package domain

// SearchResult is a single organic result returned by the search API
type SearchResult struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
}

// Text returns the string the classifier sees for this result
func (r SearchResult) Text() string {
	return r.Title + " " + r.Description
}

// SearchResponse represents the response body of the search API
type SearchResponse struct {
	Results []SearchResult `json:"results"`
}

// ClassifiedResult is a search result annotated with its predicted category
type ClassifiedResult struct {
	Title    string `json:"title"`
	Category string `json:"category"`
	URL      string `json:"url"`
}

// SearchRequest represents an ad-hoc classification query
type SearchRequest struct {
	Query string `json:"query"`
}
