package service

import (
	"fmt"

	"github.com/bwmarrin/snowflake"
)

// SnowflakeIDs generates time-ordered ids unique across up to 1024 nodes.
type SnowflakeIDs struct {
	node *snowflake.Node
}

// NewSnowflakeIDs creates a generator for nodeID.
func NewSnowflakeIDs(nodeID int64) (*SnowflakeIDs, error) {
	node, err := snowflake.NewNode(nodeID)
	if err != nil {
		return nil, fmt.Errorf("failed to create snowflake node %d: %w", nodeID, err)
	}
	return &SnowflakeIDs{node: node}, nil
}

func (g *SnowflakeIDs) NextID() int64 {
	return g.node.Generate().Int64()
}
