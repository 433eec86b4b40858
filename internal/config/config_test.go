package config

import (
	"fmt"
	"testing"
)

func TestMustLoad(t *testing.T) {
	cfg := MustLoad("./test_data")

	if cfg.Public.Port != 8080 {
		t.Errorf("Port, got: %s, want: %s", fmt.Sprint(cfg.Public.Port), "8080")
	}
	if cfg.Public.LogLevel != "debug" {
		t.Errorf("LogLevel, got: %s, want: %s", cfg.Public.LogLevel, "debug")
	}
	if !cfg.Public.LogJSON {
		t.Errorf("LogJSON, got: false, want: true")
	}
	if cfg.Public.CorsOrigin != "http://localhost:8081" {
		t.Errorf("CorsOrigin, got: %s, want: %s", cfg.Public.CorsOrigin, "http://localhost:8081")
	}
	if cfg.Public.MutationRps != 5 {
		t.Errorf("MutationRps, got: %s, want: %s", fmt.Sprint(cfg.Public.MutationRps), "5")
	}
	if cfg.Private.Pg.Host != "localhost" {
		t.Errorf("pg.Host, got: %s, want: %s", cfg.Private.Pg.Host, "localhost")
	}
	if cfg.Private.Pg.Port != 5432 {
		t.Errorf("pg.Port, got: %s, want: %s", fmt.Sprint(cfg.Private.Pg.Port), "5432")
	}
	if cfg.Private.Pg.User != "ekorre" {
		t.Errorf("pg.User, got: %s, want: %s", cfg.Private.Pg.User, "ekorre")
	}
	if cfg.Private.Pg.Password != "pass" {
		t.Errorf("pg.Password, got: %s, want: %s", cfg.Private.Pg.Password, "pass")
	}
	if cfg.Private.Pg.Dbname != "ekorre" {
		t.Errorf("pg.Dbname, got: %s, want: %s", cfg.Private.Pg.Dbname, "ekorre")
	}
}
