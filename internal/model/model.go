package model

import "time"

// Session identifies an authenticated admin-portal user. It is produced by
// Login and passed to every upstream call as a credential; nothing here is
// persisted.
type Session struct {
	UserID    int64  `json:"userId"`
	AccountID int64  `json:"accountId,omitempty"`
	Token     string `json:"token"`
}

// Account is an admin-portal account as returned by the upstream service.
type Account struct {
	ID         int64  `json:"id"`
	Email      string `json:"email"`
	Properties struct {
		Company string `json:"company,omitempty"`
	} `json:"properties,omitempty"`
	Flags
}

// App is an application owned by an account. A disabled app is filtered out
// of listings before it reaches the caller.
type App struct {
	ID      int64    `json:"id"`
	Name    string   `json:"name"`
	Owner   int64    `json:"owner_id"`
	Keysets []Keyset `json:"keys,omitempty"`
	Flags
}

// Keyset is a credential set scoped to one app.
type Keyset struct {
	ID           int64  `json:"id"`
	AppID        int64  `json:"app_id"`
	SubscribeKey string `json:"subscribe_key"`
	PublishKey   string `json:"publish_key"`
	SecretKey    string `json:"secret_key,omitempty"`
	Properties   struct {
		Name string `json:"name,omitempty"`
	} `json:"properties,omitempty"`
	Flags
}

// DeploymentRunning is the lifecycle state of a live deployment (and of a
// live function inside one). Anything else counts as not running.
const DeploymentRunning = "RUNNING"

// Package is a deployable bundle of serverless functions at account scope.
type Package struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Revision is an immutable versioned snapshot of a Package. The upstream
// service returns revisions newest-first; only the first is ever consulted.
type Revision struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// Deployment binds a Revision to a keyset with a running/stopped state.
type Deployment struct {
	ID        int64                `json:"id"`
	State     string               `json:"state"`
	CreatedAt time.Time            `json:"created_at"`
	Keyset    KeysetRef            `json:"keyset"`
	Functions []FunctionDeployment `json:"function_deployments"`
}

// KeysetRef is the keyset a deployment targets.
type KeysetRef struct {
	ID int64 `json:"id"`
}

// FunctionDeployment is one function inside a Deployment.
type FunctionDeployment struct {
	FunctionRevisionID int64  `json:"function_revision_id"`
	Name               string `json:"function_name"`
	Type               string `json:"function_type"`
	State              string `json:"state"`
}

// FunctionSummary is the externally visible shape of one deployed function.
type FunctionSummary struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Type    string `json:"type"`
	Enabled bool   `json:"enabled"`
}

// ModuleSummary describes the latest running deployment of one package on a
// keyset. It is derived per request, never persisted, and only produced for
// packages that actually have a running deployment on the target keyset.
type ModuleSummary struct {
	PackageID       int64             `json:"packageId"`
	PackageName     string            `json:"packageName"`
	RevisionID      int64             `json:"revisionId"`
	RevisionName    string            `json:"revisionName"`
	DeploymentID    int64             `json:"deploymentId"`
	DeploymentState string            `json:"deploymentState"`
	Functions       []FunctionSummary `json:"functions"`
}

// EventListener is the raw upstream event-handler record. Actions come
// embedded; they are never fetched separately.
type EventListener struct {
	ID      int64    `json:"id"`
	Name    string   `json:"name"`
	Event   string   `json:"event"`
	Status  string   `json:"status"`
	Actions []Action `json:"actions"`
}

// Action is a configured side effect invocable by one or more listeners.
type Action struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Type   string `json:"type"`
	Status string `json:"status"`
}

// NormalizedListener is the consumer-facing listener shape. Enabled is true
// iff the upstream status is the literal string "on".
type NormalizedListener struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Event   string `json:"event"`
	Enabled bool   `json:"enabled"`
}

// NormalizedAction is the consumer-facing action shape, deduplicated by id.
type NormalizedAction struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Type    string `json:"type"`
	Enabled bool   `json:"enabled"`
}

// StatusOn is the upstream convention for an enabled listener or action.
const StatusOn = "on"
