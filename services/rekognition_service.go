package services

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/rekognition"
	"github.com/aws/aws-sdk-go-v2/service/rekognition/types"

	"github.com/warriorfdkl/kalogram/apperr"
)

// RekognitionVision is the fallback provider for deployments without a chat
// model credential. Rekognition labels the dish but cannot estimate portion
// mass, so WeightGrams stays zero and the pipeline takes the weight the
// nutrition service measured for the query.
type RekognitionVision struct {
	client *rekognition.Client
}

func NewRekognitionVision() (*RekognitionVision, error) {
	cfg, err := awsconfig.LoadDefaultConfig(context.TODO(),
		awsconfig.WithRegion(os.Getenv("AWS_REGION")))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperr.ErrConfiguration, err)
	}
	return &RekognitionVision{client: rekognition.NewFromConfig(cfg)}, nil
}

func (r *RekognitionVision) Recognize(ctx context.Context, imageDataURI string) (FoodGuess, error) {
	comma := strings.IndexByte(imageDataURI, ',')
	if comma < 0 || !strings.HasPrefix(imageDataURI, "data:image") {
		return FoodGuess{}, fmt.Errorf("%w: invalid data URI", apperr.ErrValidation)
	}
	data, err := base64.StdEncoding.DecodeString(imageDataURI[comma+1:])
	if err != nil {
		return FoodGuess{}, fmt.Errorf("%w: bad base64 payload: %v", apperr.ErrValidation, err)
	}

	out, err := r.client.DetectLabels(ctx, &rekognition.DetectLabelsInput{
		Image:         &types.Image{Bytes: data},
		MaxLabels:     aws.Int32(5),
		MinConfidence: aws.Float32(75),
	})
	if err != nil {
		return FoodGuess{}, fmt.Errorf("%w: rekognition: %v", apperr.ErrUpstream, err)
	}

	for _, l := range out.Labels {
		if l.Name != nil && *l.Name != "" {
			return FoodGuess{Food: *l.Name}, nil
		}
	}
	return FoodGuess{}, fmt.Errorf("%w: no labels detected", apperr.ErrParse)
}
