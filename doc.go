// Copyright (c) 2026 Edgegrove and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package workerenv supplies configuration values from a serverless worker
// runtime's environment bindings through the layered provider model of
// [github.com/edgegrove/workerenv/conf].
//
// Construct a [Bindings] provider via [FromStruct], passing the target
// configuration type as a type parameter. The provider upper-cases field
// names to derive binding names and reads each one from an [Env]:
//
//	type Config struct {
//	    DatabaseUrl    string `config:"database_url"`
//	    MaxConnections string `config:"max_connections"`
//	}
//
//	var cfg Config
//	err := conf.Merge(
//	    workerenv.FromStruct[Config](env),
//	).Extract(&cfg)
//
// The above looks up DATABASE_URL and MAX_CONNECTIONS in the worker
// environment automatically.
//
// # Vars vs. secrets
//
// Worker runtimes distinguish between plain-text variables and secrets, but
// a given binding name can only be one or the other. The provider therefore
// tries [Env.Var] first and falls back to [Env.Secret], so no annotation is
// needed. At the struct level, the recommended convention is to declare
// secret-backed fields as [conf.Secret], which keeps the value out of logs
// and JSON output:
//
//	type Config struct {
//	    DatabaseUrl string      `config:"database_url"` // variable
//	    ApiKey      conf.Secret `config:"api_key"`      // secret
//	}
package workerenv
