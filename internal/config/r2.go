package config

import "os"

// R2Config holds the Cloudflare R2 (S3-compatible) settings for document
// storage. Credentials only ever come from the environment.
type R2Config struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	Region    string
	PublicURL string // base URL documents are served from
}

// LoadR2 reads R2 settings from the environment. Enabled() is false when the
// credentials are missing, and the document service degrades gracefully.
func LoadR2() R2Config {
	region := os.Getenv("R2_REGION")
	if region == "" {
		region = "auto"
	}
	return R2Config{
		Endpoint:  os.Getenv("R2_ENDPOINT"),
		AccessKey: os.Getenv("R2_ACCESS_KEY"),
		SecretKey: os.Getenv("R2_SECRET_KEY"),
		Bucket:    os.Getenv("R2_BUCKET"),
		Region:    region,
		PublicURL: os.Getenv("R2_PUBLIC_URL"),
	}
}

// Enabled reports whether document storage is configured
func (r R2Config) Enabled() bool {
	return r.Endpoint != "" && r.AccessKey != "" && r.SecretKey != "" && r.Bucket != ""
}
