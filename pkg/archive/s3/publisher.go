// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package s3

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	aws "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	log "github.com/sirupsen/logrus"
)

// DefaultRegion is used when no region is configured.
const DefaultRegion = "us-east-1"

// Config holds explicit construction parameters.  Fields left empty fall back
// to the default AWS configuration chain.
type Config struct {
	Region          string
	Bucket          string
	Prefix          string
	Endpoint        string // optional, e.g. MinIO
	AccessKeyID     string
	SecretAccessKey string
	SessionToken    string
	PathStyle       bool
}

// Environment variables read by ConfigFromEnv:
//
//	PROPTAB_S3_BUCKET=<bucket> (required)
//	PROPTAB_S3_REGION=<region> (default us-east-1)
//	PROPTAB_S3_PREFIX=<key prefix> (optional)
//	PROPTAB_S3_ENDPOINT=<url> (optional)
//	PROPTAB_S3_PATH_STYLE=true|false (default false)
//	AWS_ACCESS_KEY_ID / AWS_SECRET_ACCESS_KEY / AWS_SESSION_TOKEN (optional)

// ConfigFromEnv constructs a publisher configuration from the process
// environment.
func ConfigFromEnv() (Config, error) {
	bucket := os.Getenv("PROPTAB_S3_BUCKET")
	//
	if bucket == "" {
		return Config{}, errors.New("PROPTAB_S3_BUCKET required for publishing")
	}
	//
	return Config{
		Bucket:    bucket,
		Region:    os.Getenv("PROPTAB_S3_REGION"),
		Prefix:    os.Getenv("PROPTAB_S3_PREFIX"),
		Endpoint:  os.Getenv("PROPTAB_S3_ENDPOINT"),
		PathStyle: strings.EqualFold(os.Getenv("PROPTAB_S3_PATH_STYLE"), "true"),
	}, nil
}

// putter is the subset of the S3 client used for publishing.
type putter interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, opts ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Publisher uploads table files to a single S3 (or S3 compatible) bucket.
type Publisher struct {
	client putter
	bucket string
	prefix string
}

// New creates a publisher from a given configuration.
func New(ctx context.Context, cfg Config, optFns ...func(*s3.Options)) (*Publisher, error) {
	if cfg.Bucket == "" {
		return nil, errors.New("s3 bucket required")
	}
	//
	region := cfg.Region
	if region == "" {
		region = DefaultRegion
	}
	//
	loadOpts := []func(*config.LoadOptions) error{config.WithRegion(region)}
	//
	if cfg.AccessKeyID != "" {
		provider := credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, cfg.SessionToken)
		loadOpts = append(loadOpts, config.WithCredentialsProvider(provider))
	}
	//
	awsCfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, err
	}
	//
	base := func(o *s3.Options) {
		o.UsePathStyle = cfg.PathStyle
		//
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	}
	//
	client := s3.NewFromConfig(awsCfg, append([]func(*s3.Options){base}, optFns...)...)
	//
	return &Publisher{client, cfg.Bucket, cfg.Prefix}, nil
}

// Publish uploads a payload under the given key (relative to the configured
// prefix), returning the full object key.
func (p *Publisher) Publish(ctx context.Context, key string, payload []byte, contentType string) (string, error) {
	fullKey := p.prefix + key
	input := &s3.PutObjectInput{
		Bucket:        aws.String(p.bucket),
		Key:           aws.String(fullKey),
		Body:          bytes.NewReader(payload),
		ContentLength: aws.Int64(int64(len(payload))),
	}
	//
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}
	//
	if _, err := p.client.PutObject(ctx, input); err != nil {
		return "", fmt.Errorf("publish s3://%s/%s: %w", p.bucket, fullKey, err)
	}
	//
	log.Debugf("published %d bytes to s3://%s/%s", len(payload), p.bucket, fullKey)
	//
	return fullKey, nil
}
