package taxonomy

import (
	"golang.org/x/exp/slices"
)

// Static reference data consulted by filters and registration forms.
// Categories and districts are served in this fixed order.

var categories = []string{
	"AI/ML Engineer",
	"Architect",
	"Barber",
	"Beautician",
	"Carpenter",
	"Cleaner",
	"Cloud Engineer",
	"Construction Worker",
	"Cook",
	"Cybersecurity Specialist",
	"Data Scientist",
	"Delivery Boy",
	"Driver",
	"Electrician",
	"Embedded Systems Engineer",
	"Event Planner",
	"Gardener",
	"Heavy Machinery Operator",
	"House Painter",
	"Housekeeping",
	"Interior Designer",
	"IoT Automation",
	"IT Support",
	"Mason",
	"Mechanic (Auto)",
	"Mobile App Developer",
	"Nanny/Caretaker",
	"Network Engineer",
	"Photographer",
	"Plumber",
	"Sales Executive",
	"Security Guard",
	"Shopkeeper",
	"Software Engineer",
	"Tailor",
	"Tile Worker",
	"Truck Mechanic",
	"Two-Wheeler Mechanic",
	"Web Developer",
	"Welder",
	"Other",
}

var states = []string{
	"Andhra Pradesh",
	"Assam",
	"Bihar",
	"Delhi",
	"Gujarat",
	"Haryana",
	"Karnataka",
	"Kerala",
	"Madhya Pradesh",
	"Maharashtra",
	"Punjab",
	"Rajasthan",
	"Tamil Nadu",
	"Telangana",
	"Uttar Pradesh",
	"West Bengal",
}

var districtsByState = map[string][]string{
	"Andhra Pradesh": {"Anantapur", "Chittoor", "East Godavari", "Guntur", "Krishna", "Kurnool", "Nellore", "Prakasam", "Srikakulam", "Visakhapatnam", "Vizianagaram", "West Godavari"},
	"Assam":          {"Barpeta", "Cachar", "Dibrugarh", "Goalpara", "Golaghat", "Jorhat", "Kamrup", "Nagaon", "Sonitpur", "Tinsukia"},
	"Bihar":          {"Bhagalpur", "Darbhanga", "Gaya", "Muzaffarpur", "Nalanda", "Patna", "Purnia", "Rohtas", "Saran", "Vaishali"},
	"Delhi":          {"Central Delhi", "East Delhi", "New Delhi", "North Delhi", "North East Delhi", "North West Delhi", "Shahdara", "South Delhi", "South East Delhi", "South West Delhi", "West Delhi"},
	"Gujarat":        {"Ahmedabad", "Bhavnagar", "Gandhinagar", "Jamnagar", "Junagadh", "Kutch", "Rajkot", "Surat", "Vadodara", "Valsad"},
	"Haryana":        {"Ambala", "Faridabad", "Gurugram", "Hisar", "Karnal", "Kurukshetra", "Panipat", "Rohtak", "Sonipat", "Yamunanagar"},
	"Karnataka":      {"Bagalkot", "Ballari", "Belagavi", "Bengaluru Rural", "Bengaluru Urban", "Dakshina Kannada", "Dharwad", "Hassan", "Mandya", "Mysuru", "Shivamogga", "Tumakuru", "Udupi"},
	"Kerala":         {"Alappuzha", "Ernakulam", "Idukki", "Kannur", "Kollam", "Kottayam", "Kozhikode", "Malappuram", "Palakkad", "Pathanamthitta", "Thiruvananthapuram", "Thrissur", "Wayanad"},
	"Madhya Pradesh": {"Bhopal", "Dewas", "Gwalior", "Indore", "Jabalpur", "Ratlam", "Rewa", "Sagar", "Satna", "Ujjain"},
	"Maharashtra":    {"Ahmednagar", "Aurangabad", "Kolhapur", "Mumbai City", "Mumbai Suburban", "Nagpur", "Nashik", "Pune", "Raigad", "Satara", "Solapur", "Thane"},
	"Punjab":         {"Amritsar", "Bathinda", "Firozpur", "Hoshiarpur", "Jalandhar", "Ludhiana", "Mohali", "Moga", "Pathankot", "Patiala"},
	"Rajasthan":      {"Ajmer", "Alwar", "Bharatpur", "Bikaner", "Jaipur", "Jaisalmer", "Jodhpur", "Kota", "Sikar", "Udaipur"},
	"Tamil Nadu":     {"Chennai", "Coimbatore", "Erode", "Kanchipuram", "Madurai", "Salem", "Thanjavur", "Tiruchirappalli", "Tirunelveli", "Vellore"},
	"Telangana":      {"Adilabad", "Hyderabad", "Karimnagar", "Khammam", "Mahbubnagar", "Medak", "Nalgonda", "Nizamabad", "Rangareddy", "Warangal"},
	"Uttar Pradesh":  {"Agra", "Aligarh", "Allahabad", "Bareilly", "Ghaziabad", "Gorakhpur", "Kanpur", "Lucknow", "Meerut", "Moradabad", "Noida", "Varanasi"},
	"West Bengal":    {"Bankura", "Birbhum", "Darjeeling", "Hooghly", "Howrah", "Kolkata", "Malda", "Murshidabad", "Nadia", "North 24 Parganas", "South 24 Parganas"},
}

func Categories() []string {
	return categories
}

func States() []string {
	return states
}

func DistrictsByState(state string) ([]string, bool) {
	districts, ok := districtsByState[state]
	return districts, ok
}

func ValidCategory(category string) bool {
	return slices.Contains(categories, category)
}

func ValidState(state string) bool {
	return slices.Contains(states, state)
}

// ValidDistrict reports whether district belongs to state. An empty district
// is accepted for any known state: the locality may be left unset.
func ValidDistrict(state, district string) bool {
	districts, ok := districtsByState[state]
	if !ok {
		return false
	}
	if district == "" {
		return true
	}
	return slices.Contains(districts, district)
}

func ValidAvailability(availability string) bool {
	return availability == "available" || availability == "busy" || availability == "unavailable"
}
