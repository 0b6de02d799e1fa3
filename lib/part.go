package lib

/*
	One placed component instance as found in the report.
*/
type Part struct {
	ComponentName string
	Footprint     string
	Value         string
	Pos           Position
	Angle         float64
}

/*
	Key identifies the component class a feeder is configured for:
	footprint and value joined by '@'.
*/
func (p *Part) Key() string {
	return ComponentKey(p.Footprint, p.Value)
}

func ComponentKey(footprint, value string) string {
	return footprint + "@" + value
}
