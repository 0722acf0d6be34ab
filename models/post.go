package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// previewLength is the maximum number of characters of a post body shown in
// list views before it gets cut off.
const previewLength = 200

// Post represents a blog post document stored in the posts collection.
// Creation order is implicit in the ObjectID.
type Post struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title string             `bson:"title" json:"title"`
	Body  string             `bson:"body" json:"body"`
	Tags  []string           `bson:"tags" json:"tags"`
}

// Preview returns a copy of the post with its body truncated to
// previewLength characters plus an ellipsis, for use in list responses.
func (p Post) Preview() Post {
	runes := []rune(p.Body)
	if len(runes) > previewLength {
		p.Body = string(runes[:previewLength]) + "..."
	}
	return p
}
