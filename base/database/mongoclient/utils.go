package mongoclient

import (
	"reflect"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsoncodec"
)

// MakeBsonM turns a patch struct into a $set document. Nil pointers and
// zero values are skipped, set pointers are dereferenced so a pointer to a
// zero value can still be written.
func MakeBsonM(patch interface{}) (bson.M, error) {
	val := reflect.Indirect(reflect.ValueOf(patch))
	typ := val.Type()
	res := bson.M{}

	for i := 0; i < val.NumField(); i++ {
		field := val.Field(i)
		if !field.CanInterface() || field.IsZero() {
			continue
		}
		tag, err := bsoncodec.DefaultStructTagParser(typ.Field(i))
		if err != nil {
			return nil, err
		}
		if tag.Skip {
			continue
		}
		res[tag.Name] = reflect.Indirect(field).Interface()
	}
	return res, nil
}
