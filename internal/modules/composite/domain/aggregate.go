package domain

// RecommendationSummary is the slice of a recommendation shown inside an aggregate view.
type RecommendationSummary struct {
	RecommendationID int    `json:"recommendationId"`
	Author           string `json:"author"`
	Rate             int    `json:"rate"`
	Content          string `json:"content,omitempty"`
}

// ReviewSummary is the slice of a review shown inside an aggregate view.
type ReviewSummary struct {
	ReviewID int    `json:"reviewId"`
	Author   string `json:"author"`
	Subject  string `json:"subject"`
	Content  string `json:"content,omitempty"`
}

// ServiceAddresses records where each part of an aggregate view came from.
type ServiceAddresses struct {
	Composite      string `json:"cmp,omitempty"`
	Product        string `json:"pro,omitempty"`
	Recommendation string `json:"rec,omitempty"`
	Review         string `json:"rev,omitempty"`
}

// ProductAggregate is the client-facing composite view: one product plus
// whatever satellite data was reachable when the view was assembled.
type ProductAggregate struct {
	ProductID        int                     `json:"productId"`
	Name             string                  `json:"name"`
	Weight           int                     `json:"weight"`
	Recommendations  []RecommendationSummary `json:"recommendations"`
	Reviews          []ReviewSummary         `json:"reviews"`
	ServiceAddresses ServiceAddresses        `json:"serviceAddresses"`
}
