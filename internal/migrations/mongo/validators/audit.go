package validators

import "go.mongodb.org/mongo-driver/bson"

var AuditLogValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType":             "object",
		"required":             []string{"event_kind", "created_at"},
		"additionalProperties": true,
		"properties": bson.M{
			"_id":            bson.M{"bsonType": "string"},
			"correlation_id": bson.M{"bsonType": "string"},
			"event_kind": bson.M{
				"enum": []string{"booking_created", "validation_failed"},
			},
			"details":    bson.M{"bsonType": "string"},
			"created_at": bson.M{"bsonType": "date"},
		},
	},
}
