package id

import (
	"sync"

	"github.com/bwmarrin/snowflake"
)

var (
	node *snowflake.Node
	once sync.Once
)

// Init initializes the Snowflake node with the given node ID.
func Init(nodeID int64) error {
	var err error
	once.Do(func() {
		node, err = snowflake.NewNode(nodeID)
	})
	return err
}

// New generates a time-ordered unique int64 id. Used to tag each HTTP
// request in the logs.
func New() int64 {
	return node.Generate().Int64()
}

// NewString returns the id in snowflake's base58 string form, compact enough
// for a response header.
func NewString() string {
	return node.Generate().Base58()
}
