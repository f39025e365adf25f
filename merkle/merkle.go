// Package merkle implements the sorted-pair keccak256 membership proofs used
// for whitelist admission. Sibling values are hashed in ascending byte order
// regardless of tree position, so proofs are order-insensitive and tree
// construction is canonical.
package merkle

import (
	"bytes"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// Hasher is the node hash primitive. The verification logic never depends on
// the concrete algorithm.
type Hasher interface {
	Hash(data ...[]byte) common.Hash
}

type keccakHasher struct{}

func (keccakHasher) Hash(data ...[]byte) common.Hash {
	return crypto.Keccak256Hash(data...)
}

// DefaultHasher hashes with keccak256, matching the on-chain scheme.
var DefaultHasher Hasher = keccakHasher{}

// Leaf derives the whitelist leaf for a participant and tier:
// keccak256(address ++ uint8 tier).
func Leaf(participant common.Address, tier uint8) common.Hash {
	return DefaultHasher.Hash(participant.Bytes(), []byte{tier})
}

// HashPair hashes two sibling nodes in ascending byte order.
func HashPair(a, b common.Hash) common.Hash {
	return hashPair(DefaultHasher, a, b)
}

func hashPair(h Hasher, a, b common.Hash) common.Hash {
	if bytes.Compare(a.Bytes(), b.Bytes()) <= 0 {
		return h.Hash(a.Bytes(), b.Bytes())
	}
	return h.Hash(b.Bytes(), a.Bytes())
}

// Verify recomputes the root from leaf and proof and compares it against the
// published root.
func Verify(proof []common.Hash, root, leaf common.Hash) bool {
	return VerifyWith(DefaultHasher, proof, root, leaf)
}

func VerifyWith(h Hasher, proof []common.Hash, root, leaf common.Hash) bool {
	computed := leaf
	for _, sibling := range proof {
		computed = hashPair(h, computed, sibling)
	}
	return computed == root
}

// Tree is a canonical sorted-pair merkle tree over a fixed leaf set. Odd
// nodes are promoted to the next layer unhashed.
type Tree struct {
	hasher Hasher
	layers [][]common.Hash
}

func NewTree(leaves []common.Hash) *Tree {
	return NewTreeWith(DefaultHasher, leaves)
}

func NewTreeWith(h Hasher, leaves []common.Hash) *Tree {
	layers := [][]common.Hash{append([]common.Hash(nil), leaves...)}
	current := layers[0]
	for len(current) > 1 {
		var next []common.Hash
		for i := 0; i < len(current); i += 2 {
			if i+1 < len(current) {
				next = append(next, hashPair(h, current[i], current[i+1]))
			} else {
				next = append(next, current[i])
			}
		}
		layers = append(layers, next)
		current = next
	}
	return &Tree{hasher: h, layers: layers}
}

// Root returns the tree root, or the zero hash for an empty tree.
func (t *Tree) Root() common.Hash {
	top := t.layers[len(t.layers)-1]
	if len(top) == 0 {
		return common.Hash{}
	}
	return top[0]
}

// Proof returns the sibling path for the given leaf, or false if the leaf is
// not in the tree.
func (t *Tree) Proof(leaf common.Hash) ([]common.Hash, bool) {
	index := -1
	for i, candidate := range t.layers[0] {
		if candidate == leaf {
			index = i
			break
		}
	}
	if index < 0 {
		return nil, false
	}

	var proof []common.Hash
	for _, layer := range t.layers[:len(t.layers)-1] {
		var sibling int
		if index%2 == 1 {
			sibling = index - 1
		} else {
			sibling = index + 1
		}
		if sibling < len(layer) {
			proof = append(proof, layer[sibling])
		}
		index /= 2
	}
	return proof, true
}
