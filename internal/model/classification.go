package model

// ClassificationStatus indicates which path of the classifier produced a category.
type ClassificationStatus string

// Classification status constants.
const (
	StatusUnclassified          ClassificationStatus = "UNCLASSIFIED"
	StatusClassifiedByRule      ClassificationStatus = "CLASSIFIED_BY_RULE"
	StatusClassifiedByEmbedding ClassificationStatus = "CLASSIFIED_BY_EMBEDDING"
)

// Classification is the result of classifying one expense description.
type Classification struct {
	Category   Category
	Status     ClassificationStatus
	Confidence float64
}
