package cities

// majorCities is the built-in directory used for offline search.
var majorCities = []City{
	{Name: "New York", Country: "US", Region: "New York", Latitude: 40.7128, Longitude: -74.0060, Population: 8336817},
	{Name: "Los Angeles", Country: "US", Region: "California", Latitude: 34.0522, Longitude: -118.2437, Population: 3979576},
	{Name: "Chicago", Country: "US", Region: "Illinois", Latitude: 41.8781, Longitude: -87.6298, Population: 2693976},
	{Name: "Houston", Country: "US", Region: "Texas", Latitude: 29.7604, Longitude: -95.3698, Population: 2320268},
	{Name: "Miami", Country: "US", Region: "Florida", Latitude: 25.7617, Longitude: -80.1918, Population: 467963},
	{Name: "San Francisco", Country: "US", Region: "California", Latitude: 37.7749, Longitude: -122.4194, Population: 881549},
	{Name: "Seattle", Country: "US", Region: "Washington", Latitude: 47.6062, Longitude: -122.3321, Population: 753675},
	{Name: "Las Vegas", Country: "US", Region: "Nevada", Latitude: 36.1699, Longitude: -115.1398, Population: 651319},
	{Name: "Toronto", Country: "CA", Region: "Ontario", Latitude: 43.6532, Longitude: -79.3832, Population: 2731571},
	{Name: "Vancouver", Country: "CA", Region: "British Columbia", Latitude: 49.2827, Longitude: -123.1207, Population: 675218},
	{Name: "Montreal", Country: "CA", Region: "Quebec", Latitude: 45.5017, Longitude: -73.5673, Population: 1780000},
	{Name: "Calgary", Country: "CA", Region: "Alberta", Latitude: 51.0447, Longitude: -114.0719, Population: 1336000},
	{Name: "London", Country: "GB", Region: "England", Latitude: 51.5074, Longitude: -0.1278, Population: 8982000},
	{Name: "Birmingham", Country: "GB", Region: "England", Latitude: 52.4862, Longitude: -1.8904, Population: 1141816},
	{Name: "Manchester", Country: "GB", Region: "England", Latitude: 53.4808, Longitude: -2.2426, Population: 547000},
	{Name: "Edinburgh", Country: "GB", Region: "Scotland", Latitude: 55.9533, Longitude: -3.1883, Population: 518500},
	{Name: "Berlin", Country: "DE", Region: "Berlin", Latitude: 52.5200, Longitude: 13.4050, Population: 3669491},
	{Name: "Munich", Country: "DE", Region: "Bavaria", Latitude: 48.1351, Longitude: 11.5820, Population: 1488202},
	{Name: "Hamburg", Country: "DE", Region: "Hamburg", Latitude: 53.5511, Longitude: 9.9937, Population: 1899160},
	{Name: "Frankfurt", Country: "DE", Region: "Hesse", Latitude: 50.1109, Longitude: 8.6821, Population: 753056},
	{Name: "Paris", Country: "FR", Region: "Île-de-France", Latitude: 48.8566, Longitude: 2.3522, Population: 2161000},
	{Name: "Lyon", Country: "FR", Region: "Auvergne-Rhône-Alpes", Latitude: 45.7640, Longitude: 4.8357, Population: 518635},
	{Name: "Marseille", Country: "FR", Region: "Provence-Alpes-Côte d'Azur", Latitude: 43.2965, Longitude: 5.3698, Population: 870731},
	{Name: "Nice", Country: "FR", Region: "Provence-Alpes-Côte d'Azur", Latitude: 43.7102, Longitude: 7.2620, Population: 342637},
	{Name: "Rome", Country: "IT", Region: "Lazio", Latitude: 41.9028, Longitude: 12.4964, Population: 2872800},
	{Name: "Milan", Country: "IT", Region: "Lombardy", Latitude: 45.4642, Longitude: 9.1900, Population: 1396059},
	{Name: "Naples", Country: "IT", Region: "Campania", Latitude: 40.8518, Longitude: 14.2681, Population: 967069},
	{Name: "Florence", Country: "IT", Region: "Tuscany", Latitude: 43.7696, Longitude: 11.2558, Population: 382258},
	{Name: "Madrid", Country: "ES", Region: "Madrid", Latitude: 40.4168, Longitude: -3.7038, Population: 6642000},
	{Name: "Barcelona", Country: "ES", Region: "Catalonia", Latitude: 41.3851, Longitude: 2.1734, Population: 1620343},
	{Name: "Valencia", Country: "ES", Region: "Valencia", Latitude: 39.4699, Longitude: -0.3763, Population: 794288},
	{Name: "Seville", Country: "ES", Region: "Andalusia", Latitude: 37.3891, Longitude: -5.9845, Population: 688711},
	{Name: "Tokyo", Country: "JP", Region: "Tokyo", Latitude: 35.6762, Longitude: 139.6503, Population: 37400068},
	{Name: "Osaka", Country: "JP", Region: "Osaka", Latitude: 34.6937, Longitude: 135.5023, Population: 19281000},
	{Name: "Kyoto", Country: "JP", Region: "Kyoto", Latitude: 35.0116, Longitude: 135.7681, Population: 1475183},
	{Name: "Yokohama", Country: "JP", Region: "Kanagawa", Latitude: 35.4437, Longitude: 139.6380, Population: 3777491},
	{Name: "Beijing", Country: "CN", Region: "Beijing", Latitude: 39.9042, Longitude: 116.4074, Population: 21540000},
	{Name: "Shanghai", Country: "CN", Region: "Shanghai", Latitude: 31.2304, Longitude: 121.4737, Population: 27058480},
	{Name: "Guangzhou", Country: "CN", Region: "Guangdong", Latitude: 23.1291, Longitude: 113.2644, Population: 15300000},
	{Name: "Shenzhen", Country: "CN", Region: "Guangdong", Latitude: 22.5431, Longitude: 114.0579, Population: 17560061},
	{Name: "Mumbai", Country: "IN", Region: "Maharashtra", Latitude: 19.0760, Longitude: 72.8777, Population: 20411274},
	{Name: "Delhi", Country: "IN", Region: "Delhi", Latitude: 28.7041, Longitude: 77.1025, Population: 32900000},
	{Name: "Bangalore", Country: "IN", Region: "Karnataka", Latitude: 12.9716, Longitude: 77.5946, Population: 12300000},
	{Name: "Chennai", Country: "IN", Region: "Tamil Nadu", Latitude: 13.0827, Longitude: 80.2707, Population: 10971108},
	{Name: "Sydney", Country: "AU", Region: "New South Wales", Latitude: -33.8688, Longitude: 151.2093, Population: 5312163},
	{Name: "Melbourne", Country: "AU", Region: "Victoria", Latitude: -37.8136, Longitude: 144.9631, Population: 5078193},
	{Name: "Brisbane", Country: "AU", Region: "Queensland", Latitude: -27.4698, Longitude: 153.0251, Population: 2560720},
	{Name: "Perth", Country: "AU", Region: "Western Australia", Latitude: -31.9505, Longitude: 115.8605, Population: 2125114},
	{Name: "São Paulo", Country: "BR", Region: "São Paulo", Latitude: -23.5558, Longitude: -46.6396, Population: 22430000},
	{Name: "Rio de Janeiro", Country: "BR", Region: "Rio de Janeiro", Latitude: -22.9068, Longitude: -43.1729, Population: 13458075},
	{Name: "Salvador", Country: "BR", Region: "Bahia", Latitude: -12.9714, Longitude: -38.5014, Population: 2886698},
	{Name: "Brasília", Country: "BR", Region: "Federal District", Latitude: -15.8267, Longitude: -47.9218, Population: 3055149},
	{Name: "Moscow", Country: "RU", Region: "Moscow", Latitude: 55.7558, Longitude: 37.6176, Population: 12506468},
	{Name: "Saint Petersburg", Country: "RU", Region: "Saint Petersburg", Latitude: 59.9311, Longitude: 30.3609, Population: 5383890},
	{Name: "Novosibirsk", Country: "RU", Region: "Novosibirsk Oblast", Latitude: 55.0084, Longitude: 82.9357, Population: 1625631},
	{Name: "Yekaterinburg", Country: "RU", Region: "Sverdlovsk Oblast", Latitude: 56.8431, Longitude: 60.6454, Population: 1495066},
	{Name: "Seoul", Country: "KR", Region: "Seoul", Latitude: 37.5665, Longitude: 126.9780, Population: 9720846},
	{Name: "Busan", Country: "KR", Region: "Busan", Latitude: 35.1796, Longitude: 129.0756, Population: 3413841},
	{Name: "Incheon", Country: "KR", Region: "Incheon", Latitude: 37.4563, Longitude: 126.7052, Population: 2963645},
	{Name: "Mexico City", Country: "MX", Region: "Mexico City", Latitude: 19.4326, Longitude: -99.1332, Population: 21804515},
	{Name: "Guadalajara", Country: "MX", Region: "Jalisco", Latitude: 20.6597, Longitude: -103.3496, Population: 5268642},
	{Name: "Monterrey", Country: "MX", Region: "Nuevo León", Latitude: 25.6866, Longitude: -100.3161, Population: 5341171},
	{Name: "Buenos Aires", Country: "AR", Region: "Buenos Aires", Latitude: -34.6118, Longitude: -58.3960, Population: 15364000},
	{Name: "Córdoba", Country: "AR", Region: "Córdoba", Latitude: -31.4201, Longitude: -64.1888, Population: 1454536},
	{Name: "Rosario", Country: "AR", Region: "Santa Fe", Latitude: -32.9442, Longitude: -60.6505, Population: 1276000},
	{Name: "Dubai", Country: "AE", Region: "Dubai", Latitude: 25.2048, Longitude: 55.2708, Population: 3411200},
	{Name: "Istanbul", Country: "TR", Region: "Istanbul", Latitude: 41.0082, Longitude: 28.9784, Population: 15519267},
	{Name: "Tehran", Country: "IR", Region: "Tehran", Latitude: 35.6892, Longitude: 51.3890, Population: 9259009},
	{Name: "Riyadh", Country: "SA", Region: "Riyadh", Latitude: 24.7136, Longitude: 46.6753, Population: 7676654},
	{Name: "Cairo", Country: "EG", Region: "Cairo", Latitude: 30.0444, Longitude: 31.2357, Population: 20901000},
	{Name: "Lagos", Country: "NG", Region: "Lagos", Latitude: 6.5244, Longitude: 3.3792, Population: 15388000},
	{Name: "Cape Town", Country: "ZA", Region: "Western Cape", Latitude: -33.9249, Longitude: 18.4241, Population: 4618000},
	{Name: "Johannesburg", Country: "ZA", Region: "Gauteng", Latitude: -26.2041, Longitude: 28.0473, Population: 5635127},
	{Name: "Singapore", Country: "SG", Region: "Singapore", Latitude: 1.3521, Longitude: 103.8198, Population: 5685807},
	{Name: "Bangkok", Country: "TH", Region: "Bangkok", Latitude: 13.7563, Longitude: 100.5018, Population: 10156000},
	{Name: "Jakarta", Country: "ID", Region: "Jakarta", Latitude: -6.2088, Longitude: 106.8456, Population: 10770487},
	{Name: "Manila", Country: "PH", Region: "Metro Manila", Latitude: 14.5995, Longitude: 120.9842, Population: 13484462},
	{Name: "Ho Chi Minh City", Country: "VN", Region: "Ho Chi Minh City", Latitude: 10.8231, Longitude: 106.6297, Population: 9000000},
	{Name: "Kuala Lumpur", Country: "MY", Region: "Kuala Lumpur", Latitude: 3.1390, Longitude: 101.6869, Population: 1768000},
}

var flags = map[string]string{
	"US": "🇺🇸", "CA": "🇨🇦", "GB": "🇬🇧", "DE": "🇩🇪", "FR": "🇫🇷",
	"IT": "🇮🇹", "ES": "🇪🇸", "JP": "🇯🇵", "CN": "🇨🇳", "IN": "🇮🇳",
	"AU": "🇦🇺", "BR": "🇧🇷", "RU": "🇷🇺", "KR": "🇰🇷", "MX": "🇲🇽",
	"AR": "🇦🇷", "AE": "🇦🇪", "TR": "🇹🇷", "IR": "🇮🇷", "SA": "🇸🇦",
	"EG": "🇪🇬", "NG": "🇳🇬", "ZA": "🇿🇦", "SG": "🇸🇬", "TH": "🇹🇭",
	"ID": "🇮🇩", "PH": "🇵🇭", "VN": "🇻🇳", "MY": "🇲🇾",
}

// GlobeFlag is returned for country codes without a known flag.
const GlobeFlag = "🌍"
