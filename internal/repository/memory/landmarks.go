package memory

import "github.com/loopi-routing/internal/domain"

// dubaiLandmarks - встроенный справочник (повторяет сиды миграции 000001)
var dubaiLandmarks = []domain.Landmark{
	{
		ID: "burj-khalifa", Name: "Burj Khalifa", Tag: "Iconic Tower", Type: domain.LandmarkTypeAttraction,
		Lat: 25.1972, Lng: 55.2744, VisitDurationMin: 120,
		PeakHours: "10:00 AM - 2:00 PM", OffPeakHours: "6:00 PM - 9:00 PM", MomentCount: 47,
		Variations: []string{"burj khalifa", "khalifa tower"},
	},
	{
		ID: "dubai-fountain", Name: "Dubai Fountain", Tag: "Water Show", Type: domain.LandmarkTypePhoto,
		Lat: 25.1953, Lng: 55.2744, VisitDurationMin: 30,
		PeakHours: "7:00 PM - 9:00 PM", OffPeakHours: "1:00 PM - 4:00 PM", MomentCount: 23,
		Variations: []string{"dubai fountain", "fountain"},
	},
	{
		ID: "palm-jumeirah", Name: "Palm Jumeirah", Tag: "Island Paradise", Type: domain.LandmarkTypeAttraction,
		Lat: 25.1124, Lng: 55.1390, VisitDurationMin: 180,
		PeakHours: "11:00 AM - 3:00 PM", OffPeakHours: "8:00 AM - 10:00 AM", MomentCount: 35,
		Variations: []string{"palm jumeirah", "the palm", "palm"},
	},
	{
		ID: "burj-al-arab", Name: "Burj Al Arab", Tag: "Luxury Hotel", Type: domain.LandmarkTypeHotel,
		Lat: 25.1412, Lng: 55.1853, VisitDurationMin: 90,
		PeakHours: "12:00 PM - 3:00 PM", OffPeakHours: "4:00 PM - 6:00 PM", MomentCount: 31,
		Variations: []string{"burj al arab", "al arab"},
	},
	{
		ID: "dubai-marina", Name: "Dubai Marina", Tag: "Waterfront", Type: domain.LandmarkTypeActivity,
		Lat: 25.0805, Lng: 55.1410, VisitDurationMin: 120,
		PeakHours: "6:00 PM - 10:00 PM", OffPeakHours: "10:00 AM - 2:00 PM", MomentCount: 28,
		Variations: []string{"dubai marina", "marina"},
	},
	{
		ID: "museum-future", Name: "Museum of the Future", Tag: "Innovation Hub", Type: domain.LandmarkTypeAttraction,
		Lat: 25.2195, Lng: 55.2802, VisitDurationMin: 150,
		PeakHours: "11:00 AM - 4:00 PM", OffPeakHours: "9:00 AM - 10:00 AM", MomentCount: 19,
		Variations: []string{"museum of the future", "future museum"},
	},
	{
		ID: "dubai-mall", Name: "Dubai Mall", Tag: "Shopping", Type: domain.LandmarkTypeActivity,
		Lat: 25.1972, Lng: 55.2796,
		Variations: []string{"dubai mall", "the dubai mall"},
	},
	{
		ID: "gold-souk", Name: "Gold Souk", Tag: "Market", Type: domain.LandmarkTypeActivity,
		Lat: 25.2697, Lng: 55.3020,
		Variations: []string{"gold souk", "souk"},
	},
	{
		ID: "jumeirah-beach", Name: "Jumeirah Beach", Tag: "Beach", Type: domain.LandmarkTypePhoto,
		Lat: 25.2048, Lng: 55.2708,
		Variations: []string{"jumeirah beach", "jbr beach"},
	},
	{
		ID: "atlantis", Name: "Atlantis", Tag: "Resort", Type: domain.LandmarkTypeHotel,
		Lat: 25.1304, Lng: 55.1174,
		Variations: []string{"atlantis", "atlantis the palm"},
	},
	{
		ID: "la-mer", Name: "La Mer", Tag: "Beachfront", Type: domain.LandmarkTypePhoto,
		Lat: 25.2317, Lng: 55.2633,
		Variations: []string{"la mer", "lamer"},
	},
	{
		ID: "global-village", Name: "Global Village", Tag: "Festival Park", Type: domain.LandmarkTypeActivity,
		Lat: 25.0758, Lng: 55.3089,
		Variations: []string{"global village"},
	},
}
