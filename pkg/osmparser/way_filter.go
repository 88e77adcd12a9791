package osmparser

// isOsmWayUsedByCars. https://github.com/RoutingKit/RoutingKit/blob/master/src/osm_profile.cpp
func isOsmWayUsedByCars(tagMap map[string]string) bool {
	_, ok := tagMap["junction"]
	if ok {
		return true
	}

	route, ok := tagMap["route"]
	if ok && route == "ferry" {
		return true
	}

	ferry, ok := tagMap["ferry"]
	if ok && ferry == "yes" {
		return true
	}

	highway, okHW := tagMap["highway"]
	if !okHW {
		return false
	}

	motorcar, ok := tagMap["motorcar"]
	if ok && motorcar == "no" {
		return false
	}

	motorVehicle, ok := tagMap["motor_vehicle"]
	if ok && motorVehicle == "no" {
		return false
	}

	access, ok := tagMap["access"]
	if ok {
		if !(access == "yes" || access == "permissive" || access == "designated" || access == "delivery" || access == "destination") {
			return false
		}
	}

	switch highway {
	case "motorway", "trunk", "primary", "secondary", "tertiary", "unclassified", "residential",
		"living_street", "service", "motorway_link", "trunk_link", "primary_link", "secondary_link",
		"tertiary_link":
		return true
	case "bicycle_road":
		return tagMap["motorcar"] == "yes"
	case "construction", "path", "footway", "cycleway", "bridleway", "pedestrian", "bus_guideway",
		"raceway", "escape", "steps", "proposed", "conveying":
		return false
	}

	oneway, ok := tagMap["oneway"]
	if ok {
		if oneway == "reversible" || oneway == "alternating" {
			return false
		}
	}

	_, ok = tagMap["maxspeed"]
	return ok
}

// wayDirection arah edge yang dibuat dari way: forward (urutan node) dan/atau backward.
func wayDirection(tagMap map[string]string) (forward bool, backward bool) {
	switch tagMap["oneway"] {
	case "yes", "true", "1":
		return true, false
	case "-1", "reverse":
		return false, true
	case "no", "false", "0":
		return true, true
	}
	if tagMap["junction"] == "roundabout" || tagMap["junction"] == "circular" {
		return true, false
	}
	return true, true
}
