package db

import (
	"strconv"

	"github.com/abrantigan/KMD-Display/constants"
	"github.com/abrantigan/KMD-Display/model"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
)

// GetPianoMetadata looks an instrument up in the registry by piano name.
// It returns nil when the registry has no endpoint configured or no
// record for the name, so enrichment degrades to nothing rather than
// blocking a report.
func GetPianoMetadata(pianoName string) *model.PianoMetadata {
	endpoint := constants.GetRegistryEndpoint()
	if endpoint == "" || pianoName == "" {
		return nil
	}

	session, err := session.NewSession(&aws.Config{
		Region:   aws.String("localhost"),
		Endpoint: &endpoint,
	})
	if err != nil {
		panic("Could not create a new DynamoDB session because " + err.Error())
	}

	client := dynamodb.New(session)
	input := &dynamodb.GetItemInput{
		TableName: aws.String(constants.RegistryTable),
		Key: map[string]*dynamodb.AttributeValue{
			"PK": {S: aws.String(pianoName)},
		},
	}
	dbres, err := client.GetItem(input)
	if err != nil {
		panic("Error from DynamoDB: " + err.Error())
	}
	if dbres.Item == nil {
		return nil
	}

	var m model.PianoMetadata
	if v, ok := dbres.Item["Technician"]; ok && v.S != nil {
		m.Technician = *v.S
	}
	if v, ok := dbres.Item["Location"]; ok && v.S != nil {
		m.Location = *v.S
	}
	if v, ok := dbres.Item["LastRegulated"]; ok && v.N != nil {
		year, _ := strconv.ParseUint(*v.N, 10, 32)
		m.LastRegulated = uint(year)
	}
	return &m
}
