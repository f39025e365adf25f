package merkle_test

import (
	"fmt"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"

	"github.com/sideshiftai/basepulse-ido/merkle"
)

func testLeaves(n int) []common.Hash {
	leaves := make([]common.Hash, n)
	for i := range leaves {
		address := common.HexToAddress(fmt.Sprintf("0x%040x", i+1))
		leaves[i] = merkle.Leaf(address, uint8(i%3+1))
	}
	return leaves
}

func TestTreeProofRoundTrip(t *testing.T) {
	t.Parallel()

	// Odd and even leaf counts exercise the promotion path.
	for _, n := range []int{1, 2, 3, 4, 5, 8, 13} {
		n := n
		t.Run(fmt.Sprintf("%d leaves", n), func(t *testing.T) {
			t.Parallel()

			leaves := testLeaves(n)
			tree := merkle.NewTree(leaves)
			root := tree.Root()
			require.NotEqual(t, common.Hash{}, root)

			for _, leaf := range leaves {
				proof, ok := tree.Proof(leaf)
				require.True(t, ok)
				require.True(t, merkle.Verify(proof, root, leaf))
			}
		})
	}
}

func TestVerifyRejectsOutsider(t *testing.T) {
	t.Parallel()

	leaves := testLeaves(7)
	tree := merkle.NewTree(leaves)
	root := tree.Root()

	outsider := merkle.Leaf(common.HexToAddress("0xdead00000000000000000000000000000000beef"), 1)
	_, ok := tree.Proof(outsider)
	require.False(t, ok)

	// A valid member proof does not admit a different leaf.
	proof, ok := tree.Proof(leaves[0])
	require.True(t, ok)
	require.False(t, merkle.Verify(proof, root, outsider))
}

func TestVerifyRejectsWrongTier(t *testing.T) {
	t.Parallel()

	address := common.HexToAddress("0x1111111111111111111111111111111111111111")
	leaves := []common.Hash{
		merkle.Leaf(address, 1),
		merkle.Leaf(common.HexToAddress("0x2222222222222222222222222222222222222222"), 2),
	}
	tree := merkle.NewTree(leaves)

	proof, ok := tree.Proof(leaves[0])
	require.True(t, ok)
	require.True(t, merkle.Verify(proof, tree.Root(), merkle.Leaf(address, 1)))
	require.False(t, merkle.Verify(proof, tree.Root(), merkle.Leaf(address, 2)))
}

func TestSingleLeafTree(t *testing.T) {
	t.Parallel()

	leaf := merkle.Leaf(common.HexToAddress("0x3333333333333333333333333333333333333333"), 3)
	tree := merkle.NewTree([]common.Hash{leaf})

	// The lone leaf is its own root and its proof is empty.
	require.Equal(t, leaf, tree.Root())
	proof, ok := tree.Proof(leaf)
	require.True(t, ok)
	require.Empty(t, proof)
	require.True(t, merkle.Verify(nil, tree.Root(), leaf))
}

func TestEmptyTreeRootIsZero(t *testing.T) {
	t.Parallel()

	tree := merkle.NewTree(nil)
	require.Equal(t, common.Hash{}, tree.Root())
}

func TestHashPairIsOrderInsensitive(t *testing.T) {
	t.Parallel()

	a := merkle.Leaf(common.HexToAddress("0x4444444444444444444444444444444444444444"), 1)
	b := merkle.Leaf(common.HexToAddress("0x5555555555555555555555555555555555555555"), 1)
	require.Equal(t, merkle.HashPair(a, b), merkle.HashPair(b, a))
}
