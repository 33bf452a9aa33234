package delivery

import (
	"encoding/json"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/google/uuid"

	"github.com/jsphweid/choralex/constants"
	"github.com/jsphweid/choralex/export"
	"github.com/jsphweid/choralex/sequence"
)

// UploadArtifacts pushes one export cycle's artifacts to the artifact
// bucket under a fresh uuid prefix and returns the object keys. Empty
// artifacts (headless SVG) are skipped.
func UploadArtifacts(arts export.Artifacts) []string {
	sess, err := session.NewSession(&aws.Config{})
	if err != nil {
		panic("Could not create an S3 session because " + err.Error())
	}

	client := s3.New(sess)
	bucket := constants.GetArtifactBucket()
	prefix := uuid.New().String()

	events, err := json.Marshal(sequence.Wire(arts.Sequence))
	if err != nil {
		panic("Could not marshal event sequence because " + err.Error())
	}

	files := map[string]string{
		"score.musicxml": arts.MusicXML,
		"score.svg":      arts.SVG,
		"score.txt":      arts.Text,
		"events.json":    string(events),
	}

	var keys []string
	for name, body := range files {
		if body == "" {
			continue
		}
		key := prefix + "/" + name
		_, err := client.PutObject(&s3.PutObjectInput{
			Bucket: aws.String(bucket),
			Key:    aws.String(key),
			Body:   strings.NewReader(body),
		})
		if err != nil {
			panic("Could not upload " + key + " because " + err.Error())
		}
		keys = append(keys, key)
	}
	return keys
}
