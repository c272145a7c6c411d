package burrow

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func assertNear(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > epsilon {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func assertMatrix(t *testing.T, name string, got, want [6]float64) {
	t.Helper()
	for i := range got {
		if math.Abs(got[i]-want[i]) > epsilon {
			t.Errorf("%s[%d] = %v, want %v (full: %v vs %v)", name, i, got[i], want[i], got, want)
		}
	}
}

// refreshTree mirrors the traversal Surface.Draw performs.
func refreshTree(n *Node, parent [6]float64, alpha float64, parentRecomputed bool) {
	recompute := refreshWorld(n, parent, alpha, parentRecomputed)
	for _, c := range n.children {
		refreshTree(c, n.worldTransform, n.worldAlpha, recompute)
	}
}

// --- computeLocalTransform ---

func TestLocalTransformIdentity(t *testing.T) {
	n := NewContainer("test")
	got := computeLocalTransform(n)
	assertMatrix(t, "identity", got, [6]float64{1, 0, 0, 1, 0, 0})
}

func TestLocalTransformTranslation(t *testing.T) {
	n := NewContainer("test")
	n.X = 10
	n.Y = 20
	got := computeLocalTransform(n)
	assertMatrix(t, "translation", got, [6]float64{1, 0, 0, 1, 10, 20})
}

func TestLocalTransformScale(t *testing.T) {
	n := NewContainer("test")
	n.ScaleX = 2
	n.ScaleY = 3
	got := computeLocalTransform(n)
	assertMatrix(t, "scale", got, [6]float64{2, 0, 0, 3, 0, 0})
}

func TestLocalTransformRotation90(t *testing.T) {
	n := NewContainer("test")
	n.Rotation = math.Pi / 2
	got := computeLocalTransform(n)
	// cos(90)=0, sin(90)=1 → a=0, b=1, c=-1, d=0
	assertMatrix(t, "rot90", got, [6]float64{0, 1, -1, 0, 0, 0})
}

func TestLocalTransformPivot(t *testing.T) {
	n := NewContainer("test")
	n.X = 100
	n.Y = 200
	n.PivotX = 16
	n.PivotY = 16
	got := computeLocalTransform(n)
	// T(100,200) * T(-16,-16) = [1,0,0,1, 84, 184]
	assertMatrix(t, "pivot", got, [6]float64{1, 0, 0, 1, 84, 184})
}

func TestLocalTransformCombined(t *testing.T) {
	n := NewContainer("test")
	n.X = 50
	n.Y = 100
	n.ScaleX = 2
	n.ScaleY = 2
	n.Rotation = math.Pi / 2

	got := computeLocalTransform(n)
	assertMatrix(t, "combined", got, [6]float64{0, 2, -2, 0, 50, 100})
}

// --- multiplyAffine ---

func TestMultiplyAffineIdentity(t *testing.T) {
	m := [6]float64{2, 1, 3, 4, 5, 6}
	assertMatrix(t, "I*m", multiplyAffine(identityTransform, m), m)
	assertMatrix(t, "m*I", multiplyAffine(m, identityTransform), m)
}

func TestMultiplyAffineTranslations(t *testing.T) {
	a := [6]float64{1, 0, 0, 1, 10, 20}
	b := [6]float64{1, 0, 0, 1, 5, 7}
	assertMatrix(t, "a*b", multiplyAffine(a, b), [6]float64{1, 0, 0, 1, 15, 27})
}

// --- cached world transforms ---

func TestWorldTransformParentChild(t *testing.T) {
	parent := NewContainer("parent")
	child := NewContainer("child")
	parent.AddChild(child)

	parent.X = 100
	child.X = 10

	refreshTree(parent, identityTransform, 1.0, false)

	assertNear(t, "parent.tx", parent.worldTransform[4], 100)
	assertNear(t, "child.tx", child.worldTransform[4], 110)
}

func TestAlphaPropagation(t *testing.T) {
	parent := NewContainer("parent")
	child := NewContainer("child")
	parent.AddChild(child)

	parent.Alpha = 0.5
	child.Alpha = 0.5

	refreshTree(parent, identityTransform, 1.0, false)

	assertNear(t, "parent.worldAlpha", parent.worldAlpha, 0.5)
	assertNear(t, "child.worldAlpha", child.worldAlpha, 0.25)
}

func TestDirtyFlagSkipsClean(t *testing.T) {
	parent := NewContainer("parent")
	child := NewContainer("child")
	parent.AddChild(child)

	parent.X = 100
	child.X = 10
	refreshTree(parent, identityTransform, 1.0, false)

	// Change child X directly (without setter → stays clean)
	child.X = 999

	refreshTree(parent, identityTransform, 1.0, false)

	assertNear(t, "child.tx (stale)", child.worldTransform[4], 110)
}

func TestDirtyFlagRecomputes(t *testing.T) {
	parent := NewContainer("parent")
	child := NewContainer("child")
	parent.AddChild(child)

	parent.X = 100
	child.X = 10
	refreshTree(parent, identityTransform, 1.0, false)

	child.SetPosition(20, 0) // marks dirty
	refreshTree(parent, identityTransform, 1.0, false)

	assertNear(t, "child.tx (updated)", child.worldTransform[4], 120)
}

func TestParentRecomputedPropagates(t *testing.T) {
	parent := NewContainer("parent")
	child := NewContainer("child")
	parent.AddChild(child)

	parent.X = 100
	child.X = 10
	refreshTree(parent, identityTransform, 1.0, false)

	parent.SetPosition(200, 0)
	refreshTree(parent, identityTransform, 1.0, false)

	assertNear(t, "child.tx (from parent)", child.worldTransform[4], 210)
}

// --- WorldTransform / Bounds ---

func TestWorldTransformIsFresh(t *testing.T) {
	parent := NewContainer("parent")
	child := NewContainer("child")
	parent.AddChild(child)
	parent.SetPosition(100, 50)
	child.SetPosition(10, 5)

	m := child.WorldTransform()
	assertNear(t, "tx", m[4], 110)
	assertNear(t, "ty", m[5], 55)

	// No draw in between: the fresh matrix must still follow.
	parent.SetPosition(0, 0)
	m = child.WorldTransform()
	assertNear(t, "tx after move", m[4], 10)
}

func TestBoundsCenteredSprite(t *testing.T) {
	stage := NewContainer("stage")
	n := NewSprite("spr", testTexture(26, 37))
	n.SetAnchor(0.5, 0.5)
	stage.AddChild(n)
	n.SetPosition(100, 200)

	b := n.Bounds()
	assertNear(t, "X", b.X, 87)
	assertNear(t, "Y", b.Y, 181.5)
	assertNear(t, "Width", b.Width, 26)
	assertNear(t, "Height", b.Height, 37)
}

func TestBoundsRotated90(t *testing.T) {
	n := NewRect("r", 40, 10, ColorWhite)
	n.SetAnchor(0.5, 0.5)
	n.SetRotation(math.Pi / 2)
	n.SetPosition(50, 50)

	b := n.Bounds()
	assertNear(t, "Width", b.Width, 10)
	assertNear(t, "Height", b.Height, 40)
	assertNear(t, "X", b.X, 45)
	assertNear(t, "Y", b.Y, 30)
}

func TestBoundsScaled(t *testing.T) {
	n := NewRect("r", 10, 10, ColorWhite)
	n.SetScale(2, 3)
	b := n.Bounds()
	assertNear(t, "Width", b.Width, 20)
	assertNear(t, "Height", b.Height, 30)
}

func TestSettersDirty(t *testing.T) {
	n := NewContainer("n")
	setters := map[string]func(){
		"SetPosition": func() { n.SetPosition(1, 2) },
		"SetScale":    func() { n.SetScale(2, 2) },
		"SetRotation": func() { n.SetRotation(1) },
		"SetPivot":    func() { n.SetPivot(3, 4) },
		"SetAlpha":    func() { n.SetAlpha(0.5) },
		"MarkDirty":   func() { n.MarkDirty() },
	}
	for name, set := range setters {
		n.transformDirty = false
		set()
		if !n.transformDirty {
			t.Errorf("%s should mark the node dirty", name)
		}
	}
}
