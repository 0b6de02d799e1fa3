package lib

/*
	CornerPartCollector keeps, for each corner of a bounding box, the part
	closest to it. Corners are indexed in Dimension.Corners order.

	A later part only replaces the retained one when it is strictly closer,
	so between equidistant parts the first one seen wins.
*/
type CornerPartCollector struct {
	corners  [4]Position
	parts    [4]*Part
	closest  [4]Position
	distance [4]float64
}

func NewCornerPartCollector(dim Dimension) *CornerPartCollector {
	c := &CornerPartCollector{}
	c.SetCorners(dim)
	return c
}

/*
	SetCorners sets the corner targets and forgets all retained parts.
*/
func (c *CornerPartCollector) SetCorners(dim Dimension) {
	c.corners = dim.Corners()
	c.parts = [4]*Part{}
	c.closest = [4]Position{}
	c.distance = [4]float64{}
}

func (c *CornerPartCollector) Update(pos Position, part *Part) {
	for i, corner := range c.corners {
		d := Distance(pos, corner)
		if c.parts[i] == nil || d < c.distance[i] {
			c.parts[i] = part
			c.closest[i] = pos
			c.distance[i] = d
		}
	}
}

func (c *CornerPartCollector) Corner(i int) Position {
	return c.corners[i]
}

/*
	GetClosest returns the position of the part retained for corner i, or
	false when no part was seen.
*/
func (c *CornerPartCollector) GetClosest(i int) (Position, bool) {
	if i < 0 || i >= len(c.parts) || c.parts[i] == nil {
		return Position{}, false
	}
	return c.closest[i], true
}

func (c *CornerPartCollector) GetPart(i int) (*Part, bool) {
	if i < 0 || i >= len(c.parts) || c.parts[i] == nil {
		return nil, false
	}
	return c.parts[i], true
}

func (c *CornerPartCollector) GetDistance(i int) (float64, bool) {
	if i < 0 || i >= len(c.parts) || c.parts[i] == nil {
		return 0, false
	}
	return c.distance[i], true
}
