package mongodb

import (
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// IDFilter normalizes a path identifier into an _id query filter.
//
// Contract: parse as a store-native ObjectID when the string is
// syntactically valid hex, else treat it as an opaque literal key. Documents
// written by this system always carry ObjectID _ids; the literal branch only
// matches data imported with string ids.
func IDFilter(id string) bson.M {
	if oid, err := primitive.ObjectIDFromHex(id); err == nil {
		return bson.M{"_id": oid}
	}
	return bson.M{"_id": id}
}

// containsFilter builds a case-insensitive literal substring match for field.
func containsFilter(field, substr string) bson.M {
	return bson.M{field: primitive.Regex{Pattern: regexp.QuoteMeta(substr), Options: "i"}}
}
