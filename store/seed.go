package store

import "github.com/vitalio/triage-api/schema"

// sampleProviders is the bootstrap catalog for a fresh providers
// collection.
var sampleProviders = []schema.ProviderRecord{
	{
		ID: "D001", Name: "Dr. Rajesh Sharma", Specialty: "Cardiology",
		Address: "Apollo Hospital, Mumbai", Latitude: 19.0760, Longitude: 72.8777,
		Rating: 4.8, Available: true, Phone: "+91-9876543210",
		Email: "rajesh.sharma@apollo.com", Affiliation: "Apollo Hospital",
		YearsExperience: 15, ConsultationFee: 1500.00,
	},
	{
		ID: "D002", Name: "Dr. Priya Patel", Specialty: "General Medicine",
		Address: "Fortis Hospital, Mumbai", Latitude: 19.0896, Longitude: 72.8656,
		Rating: 4.5, Available: true, Phone: "+91-9876543211",
		Email: "priya.patel@fortis.com", Affiliation: "Fortis Healthcare",
		YearsExperience: 12, ConsultationFee: 800.00,
	},
	{
		ID: "D003", Name: "Dr. Amit Singh", Specialty: "Endocrinology",
		Address: "Manipal Hospital, Mumbai", Latitude: 19.0895, Longitude: 72.8634,
		Rating: 4.7, Available: false, Phone: "+91-9876543212",
		Email: "amit.singh@manipal.com", Affiliation: "Manipal Hospitals",
		YearsExperience: 18, ConsultationFee: 1200.00,
	},
	{
		ID: "D004", Name: "Dr. Sunita Kumar", Specialty: "Orthopedics",
		Address: "Lilavati Hospital, Mumbai", Latitude: 19.0501, Longitude: 72.8302,
		Rating: 4.6, Available: true, Phone: "+91-9876543213",
		Email: "sunita.kumar@lilavati.com", Affiliation: "Lilavati Hospital",
		YearsExperience: 20, ConsultationFee: 1800.00,
	},
	{
		ID: "D005", Name: "Dr. Vikram Mehta", Specialty: "Neurology",
		Address: "Kokilaben Hospital, Mumbai", Latitude: 19.1334, Longitude: 72.8267,
		Rating: 4.9, Available: true, Phone: "+91-9876543214",
		Email: "vikram.mehta@kokilaben.com", Affiliation: "Kokilaben Dhirubhai Ambani Hospital",
		YearsExperience: 22, ConsultationFee: 2000.00,
	},
	{
		ID: "D006", Name: "Dr. Kavita Joshi", Specialty: "Dermatology",
		Address: "Jaslok Hospital, Mumbai", Latitude: 18.9667, Longitude: 72.8081,
		Rating: 4.4, Available: true, Phone: "+91-9876543215",
		Email: "kavita.joshi@jaslok.com", Affiliation: "Jaslok Hospital",
		YearsExperience: 10, ConsultationFee: 1000.00,
	},
	{
		ID: "D007", Name: "Dr. Ravi Agarwal", Specialty: "Psychiatry",
		Address: "Hinduja Hospital, Mumbai", Latitude: 19.0176, Longitude: 72.8562,
		Rating: 4.7, Available: true, Phone: "+91-9876543216",
		Email: "ravi.agarwal@hinduja.com", Affiliation: "P.D. Hinduja Hospital",
		YearsExperience: 16, ConsultationFee: 1300.00,
	},
	{
		ID: "D008", Name: "Dr. Meera Reddy", Specialty: "Gynecology",
		Address: "Breach Candy Hospital, Mumbai", Latitude: 18.9696, Longitude: 72.8031,
		Rating: 4.6, Available: true, Phone: "+91-9876543217",
		Email: "meera.reddy@breachcandy.com", Affiliation: "Breach Candy Hospital",
		YearsExperience: 14, ConsultationFee: 1600.00,
	},
	{
		ID: "D009", Name: "Dr. Suresh Iyer", Specialty: "Pediatrics",
		Address: "Rainbow Hospital, Mumbai", Latitude: 19.1076, Longitude: 72.8263,
		Rating: 4.5, Available: true, Phone: "+91-9876543218",
		Email: "suresh.iyer@rainbow.com", Affiliation: "Rainbow Children's Hospital",
		YearsExperience: 13, ConsultationFee: 900.00,
	},
	{
		ID: "D010", Name: "Dr. Anju Nair", Specialty: "Ophthalmology",
		Address: "Sankara Nethralaya, Mumbai", Latitude: 19.0330, Longitude: 72.8570,
		Rating: 4.8, Available: false, Phone: "+91-9876543219",
		Email: "anju.nair@sankara.com", Affiliation: "Sankara Nethralaya",
		YearsExperience: 17, ConsultationFee: 1100.00,
	},
}
