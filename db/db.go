// Package db looks up recording metadata (title/artist/release) in
// DynamoDB, keyed by source filename. Used only to label rendered
// scores; transcription itself never touches it.
package db

import (
	"fmt"
	"os"
	"strconv"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"

	"github.com/jsphweid/melodex/model"
)

const tableName = "melodex-metadata"

func endpoint() string {
	if ep := os.Getenv("METADATA_DB_ENDPOINT"); ep != "" {
		return ep
	}
	return "http://localhost:8000"
}

// GetRecordingMetadatas batch-gets metadata for up to 10 filenames.
func GetRecordingMetadatas(filenames []string) (map[string]model.RecordingMetadata, error) {
	if len(filenames) > 10 {
		return nil, fmt.Errorf("can only look up 10 filenames at a time, got %v", len(filenames))
	}

	res := make(map[string]model.RecordingMetadata)
	if len(filenames) == 0 {
		return res, nil
	}

	var keys []map[string]*dynamodb.AttributeValue
	for _, filename := range filenames {
		keys = append(keys, map[string]*dynamodb.AttributeValue{
			"PK": {S: aws.String(filename)},
		})
	}

	ep := endpoint()
	sess, err := session.NewSession(&aws.Config{
		Region:   aws.String("localhost"),
		Endpoint: &ep,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create a DynamoDB session: %v", err)
	}

	client := dynamodb.New(sess)
	input := &dynamodb.BatchGetItemInput{
		RequestItems: map[string]*dynamodb.KeysAndAttributes{
			tableName: {Keys: keys},
		},
	}
	dbres, err := client.BatchGetItem(input)
	if err != nil {
		return nil, fmt.Errorf("error from DynamoDB: %v", err)
	}

	for _, v := range dbres.Responses[tableName] {
		var m model.RecordingMetadata
		if v["Year"] != nil && v["Year"].N != nil {
			year, _ := strconv.ParseUint(*v["Year"].N, 10, 32)
			m.Year = uint(year)
		}
		if v["Artist"] != nil && v["Artist"].S != nil {
			m.Artist = *v["Artist"].S
		}
		if v["Release"] != nil && v["Release"].S != nil {
			m.Release = *v["Release"].S
		}
		if v["Title"] != nil && v["Title"].S != nil {
			m.Title = *v["Title"].S
		}
		res[*v["PK"].S] = m
	}

	return res, nil
}
