// Package config provides configuration parsing for markup.
//
// The configuration is stored in markup.json at the project root.
// This package handles loading, saving, and validating configuration.
//
// # Configuration File Structure
//
//	{
//	  "server": {
//	    "host": "0.0.0.0",
//	    "port": 8080,
//	    "documentsDir": "docs"
//	  },
//	  "metrics": {
//	    "enabled": true,
//	    "path": "/metrics"
//	  },
//	  "tracing": {
//	    "enabled": true
//	  },
//	  "publish": {
//	    "bucket": "site",
//	    "prefix": "pages/",
//	    "region": "eu-west-1"
//	  },
//	  "document": {
//	    "escapeText": true,
//	    "sanitizeHTML": true
//	  },
//	  "log": {
//	    "level": "debug"
//	  }
//	}
//
// # Usage
//
//	cfg, err := config.Load(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println("Listening on", cfg.Address())
package config
