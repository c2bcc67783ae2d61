package validators

import "go.mongodb.org/mongo-driver/bson"

var BookingValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType":             "object",
		"required":             []string{"client_name", "client_email", "event_date", "event_time", "event_type", "status", "created_at"},
		"additionalProperties": true,
		"properties": bson.M{
			"_id":          bson.M{"bsonType": "string"},
			"client_name":  bson.M{"bsonType": "string"},
			"client_email": bson.M{"bsonType": "string"},
			"client_phone": bson.M{"bsonType": "string"},
			"event_date": bson.M{
				"bsonType": "string",
				"pattern":  `^\d{4}-\d{2}-\d{2}$`,
			},
			"event_time": bson.M{
				"bsonType": "string",
				"pattern":  `^\d{2}:\d{2}$`,
			},
			"event_type": bson.M{
				"enum": []string{"wedding", "corporate", "birthday", "anniversary", "other"},
			},
			"location": bson.M{"bsonType": "string"},
			"message":  bson.M{"bsonType": "string"},
			"duration_min": bson.M{
				"bsonType": "int",
				"minimum":  30,
				"maximum":  480,
			},
			"status": bson.M{
				"enum": []string{"confirmed", "cancelled"},
			},
			"calendar_event_id": bson.M{"bsonType": "string"},
			"created_at":        bson.M{"bsonType": "date"},
			"updated_at":        bson.M{"bsonType": "date"},
		},
	},
}
