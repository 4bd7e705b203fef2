// Package config provides configuration management for the report generator.
// It loads settings from a JSON file, falls back to hard-coded defaults when
// the file is missing or malformed, and persists defaults on first run so
// subsequent runs are customizable.
//
// # Configuration File
//
// The configuration file is a JSON object:
//
//	{
//	    "company_name": "Your Company Name",
//	    "report_title": "Automated Report",
//	    "output_directory": "reports",
//	    "date_format": "%Y-%m-%d",
//	    "colors": {
//	        "header": "366092",
//	        "subheader": "5B9BD5",
//	        "accent": "70AD47"
//	    }
//	}
//
// Unknown keys are ignored; missing keys keep their default values. The date
// format uses strftime-style directives and is translated to a Go time layout
// by StrftimeToGoLayout.
//
// # Environment
//
// The only environment-driven behavior is the config file location:
//
//	REPORTGEN_CONFIG_FILE=/etc/reportgen/report_config.json
//
// Configuration problems never abort report generation: Load always returns
// a usable Config.
package config
