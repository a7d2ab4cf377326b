// Package config provides configuration parsing for weft projects.
//
// The configuration is stored in weft.yaml at the project root.
// This package handles loading, saving, and validating configuration.
//
// # Configuration File Structure
//
//	name: mysite
//	serve:
//	  host: localhost
//	  port: 8080
//	  dir: dist
//	  watch: true
//	build:
//	  output: dist
//	publish:
//	  bucket: my-site-bucket
//	  region: us-east-1
//	  prefix: site/
//	  prune: true
//
// # Usage
//
//	cfg, err := config.Load(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println("Port:", cfg.Serve.Port)
package config
