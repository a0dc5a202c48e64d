package referral

import (
	"errors"

	"github.com/emirpasic/gods/sets/hashset"

	"github.com/refpay/refpay/models"
)

// TreeNode is the derived, request-scoped view of one member inside a
// reconstructed referral tree. Level 0 is the discovered root.
type TreeNode struct {
	UID      string      `json:"uid"`
	Name     string      `json:"name"`
	Email    string      `json:"email"`
	Level    int         `json:"level"`
	Children []*TreeNode `json:"children"`
}

// TreeBuilder reconstructs the referral tree containing any member: it walks
// up to the root of the member's ancestry chain, then expands every
// descendant downward. It never mutates the directory.
type TreeBuilder struct {
	directory Directory
}

func NewTreeBuilder(directory Directory) *TreeBuilder {
	return &TreeBuilder{directory: directory}
}

func (b *TreeBuilder) BuildTree(uid string) (*TreeNode, error) {
	root, err := b.findRoot(uid)
	if err != nil {
		return nil, err
	}

	return b.expand(root, 0, hashset.New())
}

// findRoot follows referrer references upward until one is absent or no
// longer resolves. The result is the root of the queried member's connected
// ancestry, which is not necessarily the global root of the directory.
func (b *TreeBuilder) findRoot(uid string) (*models.Member, error) {
	member, err := b.directory.FindMemberByUID(uid)
	if err != nil {
		return nil, err
	}

	seen := hashset.New(member.UID)

	for member.HavingReferrer() {
		referrer, err := b.directory.FindMemberByUID(member.ReferralUID.String)
		if errors.Is(err, ErrMemberNotFound) {
			break
		}
		if err != nil {
			return nil, err
		}

		// A referrer chain that cycles back has no root; treat the last
		// member before the repeat as it.
		if seen.Contains(referrer.UID) {
			break
		}
		seen.Add(referrer.UID)

		member = referrer
	}

	return member, nil
}

func (b *TreeBuilder) expand(member *models.Member, level int, visited *hashset.Set) (*TreeNode, error) {
	visited.Add(member.UID)

	node := &TreeNode{
		UID:      member.UID,
		Name:     member.Name,
		Email:    member.Email,
		Level:    level,
		Children: make([]*TreeNode, 0),
	}

	childUIDs, err := b.directory.ReferredUIDs(member.UID)
	if err != nil {
		return nil, err
	}

	for _, childUID := range childUIDs {
		if visited.Contains(childUID) {
			continue
		}

		child, err := b.directory.FindMemberByUID(childUID)
		if errors.Is(err, ErrMemberNotFound) {
			// Dangling back-reference; rebuild best-effort from whatever
			// still resolves.
			continue
		}
		if err != nil {
			return nil, err
		}

		childNode, err := b.expand(child, level+1, visited)
		if err != nil {
			return nil, err
		}

		node.Children = append(node.Children, childNode)
	}

	return node, nil
}
